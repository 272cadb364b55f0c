package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/depot/pkg/config"
	"github.com/arthur-debert/depot/pkg/installer"
	"github.com/arthur-debert/depot/pkg/logging"
	"github.com/arthur-debert/depot/pkg/paths"
	"github.com/arthur-debert/depot/pkg/types"
	"github.com/arthur-debert/depot/pkg/ui"
)

// runInstall drives both the install and check commands. Check is an
// install with dry-run forced on.
func runInstall(cmd *cobra.Command, args []string, forceDryRun bool) error {
	logger := logging.GetLogger("cmd." + cmd.Name())

	p, err := paths.New("")
	if err != nil {
		return fmt.Errorf(MsgErrInitPaths, err)
	}

	cfg, err := config.Load(p, nil)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	spec, manifestPath, err := resolveSpec(cmd, p, cfg, args)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	spec.DryRun = dryRun || forceDryRun

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		spec.Quiet = true
	}

	out := cmd.OutOrStdout()

	format, err := resolveFormat(cmd, cfg, out)
	if err != nil {
		return err
	}
	if format == ui.FormatJSON {
		// Keep stdout parseable; the report carries the full run log
		spec.Quiet = true
	}

	logger.Info().
		Str("manager", spec.Manager).
		Str("manifest", manifestPath).
		Int("dependencies", len(spec.Dependencies)).
		Bool("dry_run", spec.DryRun).
		Msg("Starting install run")

	ins := installer.New(installer.Options{Mirror: out})
	report, err := ins.Install(cmd.Context(), *spec)
	if err != nil {
		return err
	}

	renderer, err := ui.NewRenderer(format, out)
	if err != nil {
		return err
	}

	// The banner would be a second JSON document; the skipped flags in
	// the report already say this was a dry run.
	if spec.DryRun && format != ui.FormatJSON {
		if err := renderer.RenderMessage(MsgDryRunNotice); err != nil {
			return err
		}
	}
	if err := renderer.RenderResult(report); err != nil {
		return err
	}

	if !report.Success {
		return fmt.Errorf(MsgErrDependenciesFailed, len(report.Failures()), len(report.Details))
	}
	return nil
}

// resolveSpec builds the install spec from positional names, the
// project manifest, or the application config. Dependencies come from
// the first source that provides any; for the manager and the global
// options, flags win over the manifest, which wins over the app config.
func resolveSpec(cmd *cobra.Command, p paths.Paths, cfg *config.Config, names []string) (*types.InstallSpec, string, error) {
	flagManager, _ := cmd.Flags().GetString("manager")
	flagOptions, _ := cmd.Flags().GetStringArray("option")
	manifestFlag, _ := cmd.Flags().GetString("manifest")

	var spec *types.InstallSpec
	manifestPath := ""

	switch {
	case len(names) > 0:
		spec = &types.InstallSpec{Quiet: !cfg.Verbose}
		for _, name := range names {
			spec.Dependencies = append(spec.Dependencies, types.Dependency{Name: name})
		}
	case manifestFlag != "":
		loaded, err := config.LoadManifest(paths.ExpandHome(manifestFlag))
		if err != nil {
			return nil, "", err
		}
		spec = loaded
		manifestPath = manifestFlag
	default:
		found, err := p.FindManifest()
		if err != nil {
			return nil, "", fmt.Errorf(MsgErrNothingToInstall, err)
		}
		loaded, err := config.LoadManifest(found)
		if err != nil {
			return nil, "", err
		}
		spec = loaded
		manifestPath = found
	}

	if flagManager != "" {
		spec.Manager = flagManager
	}
	if spec.Manager == "" {
		spec.Manager = cfg.Manager
	}

	if len(flagOptions) > 0 {
		spec.GlobalOptions = flagOptions
	}
	if len(spec.GlobalOptions) == 0 {
		spec.GlobalOptions = cfg.GlobalOptions
	}

	return spec, manifestPath, nil
}

// resolveFormat picks the output format: the --format flag wins, then
// the configured format, then terminal detection on the output writer.
func resolveFormat(cmd *cobra.Command, cfg *config.Config, out io.Writer) (ui.Format, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	if name == "" {
		name = cfg.Format
	}

	format, err := ui.ParseFormat(name)
	if err != nil {
		return ui.FormatAuto, err
	}
	if format == ui.FormatAuto {
		format = ui.DetectFormat(out)
	}
	return format, nil
}
