// Package ui provides a unified interface for rendering depot output in
// different formats. It supports terminal (styled), text (plain), and
// JSON output.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/depot/pkg/ui/json"
	"github.com/arthur-debert/depot/pkg/ui/terminal"
	"github.com/arthur-debert/depot/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders any result type. Renderers know how to lay
	// out an install report and fall back to plain printing for
	// everything else.
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for the given format. FormatAuto
// resolves against the terminal capabilities of output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = DetectFormat(output)
	}

	switch format {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
