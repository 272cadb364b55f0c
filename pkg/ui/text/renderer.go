// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/depot/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Report:
		return r.renderReport(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderReport(report *types.Report) error {
	for _, res := range report.Details {
		if _, err := fmt.Fprintln(r.output, resultLine(res)); err != nil {
			return err
		}
	}

	if len(report.Details) > 0 {
		if _, err := fmt.Fprintln(r.output); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(r.output, Summarize(report))
	return err
}

// resultLine formats one dependency outcome. Dry-run and successful
// entries carry their own message text, failures get a failed marker.
func resultLine(res types.Result) string {
	switch {
	case !res.Success:
		return fmt.Sprintf("%s: failed: %s", res.Name, res.Message)
	case res.Message == "":
		return fmt.Sprintf("%s: ok", res.Name)
	default:
		return fmt.Sprintf("%s: %s", res.Name, res.Message)
	}
}

// Summarize builds the one-line run summary shown under the details.
func Summarize(report *types.Report) string {
	total := len(report.Details)
	failed := len(report.Failures())
	skipped := report.SkippedCount()
	installed := total - failed - skipped

	switch {
	case total == 0:
		return "no dependencies to install"
	case failed == 0 && skipped == 0:
		return fmt.Sprintf("%d %s installed", total, dependencies(total))
	default:
		parts := []string{
			fmt.Sprintf("%d of %d %s installed", installed, total, dependencies(total)),
		}
		if failed > 0 {
			parts = append(parts, fmt.Sprintf("%d failed", failed))
		}
		if skipped > 0 {
			parts = append(parts, fmt.Sprintf("%d skipped", skipped))
		}
		return strings.Join(parts, ", ")
	}
}

func dependencies(n int) string {
	if n == 1 {
		return "dependency"
	}
	return "dependencies"
}
