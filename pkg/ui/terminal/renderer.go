// Package terminal provides styled terminal output with colors and
// status badges.
package terminal

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/depot/pkg/types"
	"github.com/arthur-debert/depot/pkg/ui/styles"
	"github.com/arthur-debert/depot/pkg/ui/text"
)

// Renderer provides styled terminal output for install reports.
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type with terminal formatting
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

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	label := styles.GetStyle("Error").Render("Error:")
	_, werr := fmt.Fprintf(r.output, "%s %v\n", label, err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}

func (r *Renderer) renderReport(report *types.Report) error {
	for _, res := range report.Details {
		line := fmt.Sprintf("  %s %s %s",
			statusStyle(res).Sprint(statusBadge(res)),
			styles.GetStyle("DependencyName").Render(fmt.Sprintf("%-18s", res.Name)),
			res.Message)
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}

	if len(report.Details) > 0 {
		if _, err := fmt.Fprintln(r.output); err != nil {
			return err
		}
	}

	summaryStyle := styles.GetStyle("Success")
	if !report.Success {
		summaryStyle = styles.GetStyle("Error")
	}
	_, err := fmt.Fprintln(r.output, summaryStyle.Render(text.Summarize(report)))
	return err
}

// statusStyle returns the pterm style for a result badge
func statusStyle(res types.Result) *pterm.Style {
	switch {
	case res.Skipped:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case res.Success:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	}
}

func statusBadge(res types.Result) string {
	switch {
	case res.Skipped:
		return " SKIP "
	case res.Success:
		return "  OK  "
	default:
		return " FAIL "
	}
}
