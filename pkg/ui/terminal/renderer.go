// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/bootstrap"
	"github.com/arthur-debert/dotsetup/pkg/manifest"
	"github.com/arthur-debert/dotsetup/pkg/ui/text"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output: the text layout in colour, a
// pterm summary and manual-step notes rendered as markdown.
type Renderer struct {
	output io.Writer
	text   *text.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer, showDiff bool) *Renderer {
	t := text.New(w, showDiff)
	t.Styled = true
	return &Renderer{output: w, text: t}
}

// RenderReport renders the report with colours and markdown notes
func (r *Renderer) RenderReport(report *bootstrap.Report) error {
	if err := r.text.RenderReport(report); err != nil {
		return err
	}

	switch {
	case report.HasFailures():
		pterm.Error.WithWriter(r.output).Println("Some targets failed; see above.")
	case report.HasChanges() && report.DryRun:
		pterm.Warning.WithWriter(r.output).Println("Changes pending; run without --dry-run to apply.")
	default:
		pterm.Success.WithWriter(r.output).Println("Everything is in place.")
	}

	if len(report.Notes) == 0 {
		return nil
	}
	_, err := io.WriteString(r.output, RenderNotes(report.Notes))
	return err
}

// RenderNotes renders manual steps as markdown. Rendering problems fall
// back to the raw markdown.
func RenderNotes(notes []manifest.Note) string {
	var md strings.Builder
	md.WriteString("# Manual steps\n\n")
	for _, n := range notes {
		if n.Title != "" {
			md.WriteString(fmt.Sprintf("## %s\n\n", n.Title))
		}
		if n.Body != "" {
			md.WriteString(n.Body + "\n\n")
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md.String()
	}
	rendered, err := renderer.Render(md.String())
	if err != nil {
		return md.String()
	}
	return rendered
}

// RenderError renders an error with pterm's error prefix
func (r *Renderer) RenderError(err error) error {
	pterm.Error.WithWriter(r.output).Println(err.Error())
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	pterm.Info.WithWriter(r.output).Println(msg)
	return nil
}
