// Package cli assembles depot's command line interface. Commands stay
// thin: they resolve configuration, hand the install spec to the
// installer, and render the resulting report.
package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/depot/internal/version"
	"github.com/arthur-debert/depot/pkg/cobrax/topics"
	"github.com/arthur-debert/depot/pkg/config"
	"github.com/arthur-debert/depot/pkg/logging"
	"github.com/arthur-debert/depot/pkg/manager"
	"github.com/arthur-debert/depot/pkg/paths"
	"github.com/arthur-debert/depot/pkg/ui"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		quiet     bool
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "depot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	rootCmd.PersistentFlags().StringVar(&format, "format", "", MsgFlagFormat)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newManagersCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help from the embedded documentation
	if docs, err := fs.Sub(topicsFS, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".txt", ".md"},
			// Always use Glamour renderer for markdown files
			Renderer: topics.NewGlamourRenderer(),
		}
		_ = topics.InitializeWithOptions(rootCmd, docs, opts)
	}

	return rootCmd
}

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install [dependencies...]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args, false)
		},
	}
	addSpecFlags(cmd)
	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [dependencies...]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args, true)
		},
	}
	addSpecFlags(cmd)
	return cmd
}

// addSpecFlags attaches the flags shared by install and check
func addSpecFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("manager", "m", "", MsgFlagManager)
	cmd.Flags().StringArrayP("option", "o", nil, MsgFlagOption)
	cmd.Flags().String("manifest", "", MsgFlagManifest)
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			dir, _ := cmd.Flags().GetString("dir")

			p, err := paths.New(dir)
			if err != nil {
				return fmt.Errorf(MsgErrInitPaths, err)
			}

			target := filepath.Join(p.WorkingDir(), paths.ManifestNames[0])
			if _, err := os.Stat(target); err == nil && !force {
				return fmt.Errorf(MsgErrManifestExists, target)
			}

			log.Info().Str("manifest", target).Msg("Writing starter manifest")

			if err := os.WriteFile(target, []byte(config.GenerateManifestContent()), 0o644); err != nil {
				return fmt.Errorf(MsgErrWriteManifest, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgInitCreated, target)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, MsgFlagForce)
	cmd.Flags().StringP("dir", "d", "", MsgFlagInitDir)

	return cmd
}

// managerInfo is the JSON shape of one managers listing entry
type managerInfo struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Default bool   `json:"default,omitempty"`
}

func newManagersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "managers",
		Short:   MsgManagersShort,
		Long:    MsgManagersLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// The default marker follows the configured manager; fall
			// back to built-in defaults when no configuration loads.
			cfg := config.Default()
			if p, err := paths.New(""); err == nil {
				if loaded, err := config.Load(p, nil); err == nil {
					cfg = loaded
				}
			}

			format, err := resolveFormat(cmd, cfg, out)
			if err != nil {
				return err
			}

			var listing []managerInfo
			for _, name := range manager.Names() {
				mgr, err := manager.New(name)
				if err != nil {
					return err
				}
				listing = append(listing, managerInfo{
					Name:    name,
					Command: mgr.InstallVerb(),
					Default: name == cfg.Manager,
				})
			}

			if format == ui.FormatJSON {
				renderer, err := ui.NewRenderer(format, out)
				if err != nil {
					return err
				}
				return renderer.RenderResult(listing)
			}

			for _, info := range listing {
				marker := " "
				if info.Default {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-5s %s\n", marker, info.Name, info.Command)
			}
			fmt.Fprint(out, MsgDefaultNote)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "depot version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newManCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Long:    MsgManLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			header := &doc.GenManHeader{
				Title:   "DEPOT",
				Section: "1",
				Source:  "depot " + version.Version,
				Manual:  "depot manual",
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}

	cmd.Flags().StringP("dir", "d", os.TempDir(), MsgFlagManDir)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
