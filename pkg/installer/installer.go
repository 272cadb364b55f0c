// Package installer drives the sequential install run: one dependency
// at a time, in declaration order, one child process per dependency,
// with every outcome collected into the aggregate report. A failing
// dependency never aborts the loop and caller-supplied data never
// surfaces as an error return; the report's Details carry each
// dependency's individual outcome.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/depot/pkg/logging"
	"github.com/arthur-debert/depot/pkg/manager"
	"github.com/arthur-debert/depot/pkg/runlog"
	"github.com/arthur-debert/depot/pkg/shellexec"
	"github.com/arthur-debert/depot/pkg/types"
	"github.com/arthur-debert/depot/pkg/validate"
	"github.com/rs/zerolog"
)

// Options contains configuration for the installer
type Options struct {
	// Runner executes composed commands. Nil selects the system shell.
	Runner shellexec.Runner
	// Mirror is the console sink for the run log when the spec is not
	// quiet. Nil selects stdout.
	Mirror io.Writer
	Logger zerolog.Logger
}

// Installer runs install specs. Safe for concurrent Install calls;
// each run owns its log and results independently.
type Installer struct {
	runner shellexec.Runner
	mirror io.Writer
	logger zerolog.Logger
}

// New creates a new installer instance
func New(opts Options) *Installer {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("installer")
	}

	runner := opts.Runner
	if runner == nil {
		runner = shellexec.NewShellRunner()
	}

	mirror := opts.Mirror
	if mirror == nil {
		mirror = os.Stdout
	}

	return &Installer{
		runner: runner,
		mirror: mirror,
		logger: logger,
	}
}

// Install runs the spec with a default installer. This is the
// programmatic entry point for library callers.
func Install(ctx context.Context, spec types.InstallSpec) (*types.Report, error) {
	return New(Options{}).Install(ctx, spec)
}

// Install processes every declared dependency in order and returns the
// aggregate report. The error return is reserved for spec shape
// problems (an unknown manager preset); per-dependency validation and
// execution failures are recorded in the report, never returned.
func (ins *Installer) Install(ctx context.Context, spec types.InstallSpec) (*types.Report, error) {
	mgr, err := manager.New(spec.Manager)
	if err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(ins.logger, "install")
	defer done()

	var mirror io.Writer
	if !spec.Quiet {
		mirror = ins.mirror
	}
	log := runlog.New(runlog.Options{Mirror: mirror})

	results := make([]types.Result, 0, len(spec.Dependencies))
	for _, dep := range spec.Dependencies {
		result := ins.installOne(ctx, mgr, spec, dep, log)
		results = append(results, result)
	}

	success := true
	for _, result := range results {
		if !result.Success {
			success = false
			break
		}
	}

	ins.logger.Info().
		Int("dependencies", len(results)).
		Bool("success", success).
		Msg("Install run finished")

	return &types.Report{
		Success:  success,
		Details:  results,
		Logs:     log.String(),
		LogLines: log.Lines(),
	}, nil
}

// installOne decides and executes a single dependency: name check,
// option resolution, command construction, then the child process. A
// rejection before the build step spawns nothing.
func (ins *Installer) installOne(ctx context.Context, mgr manager.Manager, spec types.InstallSpec, dep types.Dependency, log *runlog.Log) types.Result {
	ins.logger.Debug().
		Str("dependency", dep.Name).
		Bool("override", dep.Override).
		Bool("dry_run", spec.DryRun).
		Msg("Processing dependency")

	if err := validate.Name(dep.Name); err != nil {
		message := fmt.Sprintf("Invalid dependency name: %s", dep.Name)
		log.Append(message)
		ins.logger.Error().Err(err).Str("dependency", dep.Name).Msg("Name validation failed")
		return types.Result{Name: dep.Name, Success: false, Message: message}
	}

	effective, err := resolveOptions(spec.GlobalOptions, dep)
	if err != nil {
		message := fmt.Sprintf("Invalid options for dependency: %s", dep.Name)
		log.Append(message)
		ins.logger.Error().Err(err).Str("dependency", dep.Name).Msg("Option validation failed")
		return types.Result{Name: dep.Name, Success: false, Message: message}
	}

	command := mgr.BuildCommand(dep.Name, effective)

	if spec.DryRun {
		log.Logf("dry-run: %s", command)
		return types.Result{
			Name:    dep.Name,
			Success: true,
			Skipped: true,
			Message: "dry run: " + command,
		}
	}

	outcome := ins.runner.Run(ctx, command)
	shellexec.Trace(log, command, outcome)

	if !outcome.Success() {
		ins.logger.Error().
			Str("dependency", dep.Name).
			Str("command", command).
			Int("exitCode", outcome.ExitCode).
			Msg("Dependency install failed")
	} else {
		ins.logger.Info().
			Str("dependency", dep.Name).
			Str("command", command).
			Msg("Dependency installed")
	}

	return types.Result{
		Name:    dep.Name,
		Success: outcome.Success(),
		Message: outcome.Message(),
	}
}

// resolveOptions produces the dependency's effective option list. An
// overriding dependency uses only its own validated options; global
// options are ignored entirely, even when invalid. A non-overriding
// dependency gets validated global options followed by its own, and
// fails when either list is rejected. Global options are re-checked
// per dependency so the failure is attributed to every dependency that
// would consume them.
func resolveOptions(global []string, dep types.Dependency) ([]string, error) {
	own, ownErr := validate.Options(dep.Options)

	if dep.Override {
		if ownErr != nil {
			return nil, ownErr
		}
		return own, nil
	}

	globalTokens, globalErr := validate.Options(global)
	if globalErr != nil {
		return nil, globalErr
	}
	if ownErr != nil {
		return nil, ownErr
	}

	effective := make([]string, 0, len(globalTokens)+len(own))
	effective = append(effective, globalTokens...)
	effective = append(effective, own...)
	return effective, nil
}
