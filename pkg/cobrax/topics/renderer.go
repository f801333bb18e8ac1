package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for display. ext is the topic file's
// extension, e.g. ".md".
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats are
// returned unchanged, as is markdown glamour fails to render.
type GlamourRenderer struct {
	// Width wraps output; 0 keeps glamour's default.
	Width int
}

func (r GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
