// Package ui renders run reports in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dotsetup/pkg/bootstrap"
	"github.com/arthur-debert/dotsetup/pkg/ui/json"
	"github.com/arthur-debert/dotsetup/pkg/ui/terminal"
	"github.com/arthur-debert/dotsetup/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderReport renders the per-target results of a run
	RenderReport(report *bootstrap.Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options tune what renderers include.
type Options struct {
	// ShowDiff includes the diff of every changed target.
	ShowDiff bool
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, opts)
		}
		return NewRenderer(FormatText, output, opts)
	case FormatTerminal:
		return terminal.New(output, opts.ShowDiff), nil
	case FormatText:
		return text.New(output, opts.ShowDiff), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
