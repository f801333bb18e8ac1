// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/bootstrap"
	"github.com/arthur-debert/dotsetup/pkg/style"
)

// Renderer provides plain text output. With Styled set it colours the same
// layout, which is how the terminal renderer reuses it.
type Renderer struct {
	output   io.Writer
	showDiff bool
	Styled   bool
}

// New creates a new text renderer
func New(output io.Writer, showDiff bool) *Renderer {
	return &Renderer{output: output, showDiff: showDiff}
}

// RenderReport renders one line per target, followed by warnings, errors,
// diffs and a summary.
func (r *Renderer) RenderReport(report *bootstrap.Report) error {
	var b strings.Builder

	if report.DryRun {
		b.WriteString(r.muted("Dry run: nothing was written.") + "\n")
	}

	for _, res := range report.Results {
		line := style.Line{
			Kind:   string(res.Kind),
			Name:   res.Name,
			Path:   res.Path,
			Status: style.Status(res.Status),
			DryRun: report.DryRun,
			Clean:  report.Mode == bootstrap.ModeClean,
		}
		b.WriteString(style.RenderLine(line, r.Styled) + "\n")

		for _, w := range res.Warnings {
			b.WriteString(style.Indent(r.warn(style.SymbolWarning+" "+w), 1) + "\n")
		}
		if res.Error != "" {
			b.WriteString(style.Indent(r.fail(style.SymbolError+" "+res.Error), 1) + "\n")
		}
		if r.showDiff && res.Diff != "" {
			d := res.Diff
			if r.Styled {
				d = style.ColorDiff(d)
			}
			b.WriteString(style.Indent(d, 2) + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\n%d changed, %d unchanged, %d failed\n",
		report.Count(bootstrap.StatusChanged),
		report.Count(bootstrap.StatusUnchanged),
		report.Count(bootstrap.StatusFailed)))

	if _, err := io.WriteString(r.output, b.String()); err != nil {
		return err
	}
	if len(report.Notes) > 0 && !r.Styled {
		return r.renderNotes(report)
	}
	return nil
}

func (r *Renderer) renderNotes(report *bootstrap.Report) error {
	var b strings.Builder
	b.WriteString("\nManual steps:\n")
	for _, n := range report.Notes {
		switch {
		case n.Title != "" && n.Body != "":
			b.WriteString(fmt.Sprintf("  - %s: %s\n", n.Title, n.Body))
		case n.Title != "":
			b.WriteString(fmt.Sprintf("  - %s\n", n.Title))
		default:
			b.WriteString(fmt.Sprintf("  - %s\n", n.Body))
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.fail("Error: "+err.Error()))
	return werr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) muted(s string) string {
	if r.Styled {
		return style.MutedStyle.Render(s)
	}
	return s
}

func (r *Renderer) warn(s string) string {
	if r.Styled {
		return style.WarningStyle.Render(s)
	}
	return s
}

func (r *Renderer) fail(s string) string {
	if r.Styled {
		return style.ErrorStyle.Render(s)
	}
	return s
}
