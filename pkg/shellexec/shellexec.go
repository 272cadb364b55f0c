// Package shellexec spawns composed install commands in a child shell
// and normalizes each child's exit into a uniform Outcome. Commands
// reaching this package have already passed validation; shellexec does
// not inspect or re-validate them.
package shellexec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/depot/pkg/logging"
)

// Outcome is the normalized result of one child process.
type Outcome struct {
	// Stdout and Stderr hold the raw captured streams, untrimmed.
	Stdout string
	Stderr string
	// ExitCode is the child's exit status: 0 on success, the reported
	// code on a non-zero exit, -1 when the process could not be
	// spawned or was killed before exiting.
	ExitCode int
	// Err is non-nil for any execution error: spawn failure or
	// non-zero exit. A non-empty Stderr alone is not an error.
	Err error
}

// Success reports whether the child completed without an execution
// error. Warnings on stderr do not count against success.
func (o Outcome) Success() bool {
	return o.Err == nil
}

// Message resolves the human-readable outcome: the error description
// on failure, otherwise trimmed stdout when non-blank, else trimmed
// stderr.
func (o Outcome) Message() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	if out := strings.TrimSpace(o.Stdout); out != "" {
		return out
	}
	return strings.TrimSpace(o.Stderr)
}

// Runner executes one command string and classifies its outcome.
type Runner interface {
	Run(ctx context.Context, command string) Outcome
}

// ShellRunner runs commands through "sh -c". One child process per
// call; calls never overlap within a run because the orchestrator is
// strictly sequential.
type ShellRunner struct{}

// NewShellRunner returns a Runner backed by the system shell.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{}
}

// Run spawns the command and waits for it. With context.Background()
// a hung child hangs the call indefinitely; a cancelable context kills
// the child on cancellation and the kill surfaces as an execution
// error.
func (r *ShellRunner) Run(ctx context.Context, command string) Outcome {
	logging.LogCommand("sh", []string{"-c", command})

	cmd := exec.CommandContext(ctx, "sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	outcome := Outcome{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    err,
	}
	outcome.ExitCode = exitCode(err)

	logger := logging.GetLogger("shellexec")
	logger.Debug().
		Str("command", command).
		Int("exitCode", outcome.ExitCode).
		Bool("success", outcome.Success()).
		Msg("Command completed")

	return outcome
}

// exitCode extracts the child's exit status from a Run error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
