package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Drive your package manager from a declarative manifest"
	MsgInstallShort    = "Install dependencies through the configured package manager"
	MsgCheckShort      = "Validate dependencies and preview their install commands"
	MsgManagersShort   = "List the supported package managers"
	MsgInitShort       = "Write a starter manifest to the working directory"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print version information for depot"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Generate man pages for depot and all of its commands"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice = "DRY RUN MODE - no install commands were executed"
	MsgInitCreated  = "Created %s\n"
	MsgDefaultNote  = "\n* default manager (from configuration)\n"

	// Error messages
	MsgErrInitPaths          = "failed to initialize paths: %w"
	MsgErrLoadConfig         = "failed to load configuration: %w"
	MsgErrNothingToInstall   = "nothing to install: %w"
	MsgErrManifestExists     = "%s already exists (use --force to overwrite)"
	MsgErrWriteManifest      = "failed to write manifest: %w"
	MsgErrDependenciesFailed = "%d of %d dependencies failed"

	// Flag descriptions
	MsgFlagVerbose  = "Increase log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Validate and log install commands without executing them"
	MsgFlagQuiet    = "Do not mirror run log lines to the terminal"
	MsgFlagFormat   = "Output format: auto, term, text, json"
	MsgFlagManager  = "Package manager to use (npm, pnpm, yarn, bun)"
	MsgFlagOption   = "Global option passed to every install command (repeatable)"
	MsgFlagManifest = "Path to the project manifest"
	MsgFlagForce    = "Overwrite an existing manifest"
	MsgFlagInitDir  = "Directory to write the manifest to"
	MsgFlagManDir   = "Directory to write man pages to"
)

// Long messages
const (
	MsgRootLong = `depot drives your package manager's install command from a declarative
manifest. Dependencies, their options, and a shared set of global options
live in depot.toml (or depot.yaml); depot validates every name and option
against a strict allowlist before any command line is composed, runs the
installs one at a time, and reports per-dependency results along with a
full run log.`

	MsgInstallLong = `Install runs the configured package manager for each declared dependency,
one at a time, and prints a per-dependency report when the run finishes.

Dependencies come from the first of:
  1. names given on the command line,
  2. the manifest named with --manifest,
  3. depot.toml / depot.yaml in the working directory.

The manager and global options resolve the same way: command line flags
win over the manifest, which wins over the application configuration.
A dependency that fails validation or whose install command exits
non-zero is reported as failed; the run always continues with the
remaining dependencies.`

	MsgInstallExample = `  depot install                      # install everything in ./depot.toml
  depot install left-pad lodash      # install the named packages
  depot install -m yarn left-pad     # use yarn instead of the default
  depot install -o --no-fund         # pass --no-fund to every install
  depot install --manifest ci.toml   # use an explicit manifest`

	MsgCheckLong = `Check performs a full install run without executing anything: every
dependency name and option is validated, the install command for each
dependency is composed and logged, and the report marks each entry as
skipped. Use it to vet a manifest before letting depot touch the system.`

	MsgCheckExample = `  depot check                        # validate ./depot.toml
  depot check left-pad 'lodash@^4'   # validate names and preview commands
  depot check --manifest ci.toml -m bun`

	MsgManagersLong = `List the package managers depot knows how to drive, together with the
install invocation each one uses. The manager marked with * is the
current default from the application configuration.`

	MsgInitLong = `Init writes a starter manifest with every setting present but commented
out. Uncomment manager, global_options, or verbose to change run-wide
behavior, and add one [[dependencies]] table per package to install.`

	MsgInitExample = `  depot init                       # write ./depot.toml
  depot init --dir ~/projects/app  # write the manifest elsewhere
  depot init --force               # overwrite an existing manifest`
)
