package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(colors.heading).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colors.muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colors.unchanged).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colors.failed).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(colors.warning).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colors.changed)

	PathStyle = lipgloss.NewStyle().
			Foreground(colors.path).
			Italic(true)

	AddedStyle = lipgloss.NewStyle().
			Foreground(colors.unchanged)

	RemovedStyle = lipgloss.NewStyle().
			Foreground(colors.failed)

	HunkStyle = lipgloss.NewStyle().
			Foreground(colors.hunk)
)

// Indicator symbols, plain and styled.
const (
	SymbolSuccess = "✓"
	SymbolChange  = "→"
	SymbolWarning = "!"
	SymbolError   = "✗"
)

// Indent prefixes every line of s with level*2 spaces.
func Indent(s string, level int) string {
	pad := strings.Repeat("  ", level)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

// ColorDiff colours a unified diff line by line.
func ColorDiff(d string) string {
	lines := strings.Split(strings.TrimRight(d, "\n"), "\n")
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "+++"), strings.HasPrefix(l, "---"):
			lines[i] = TitleStyle.Render(l)
		case strings.HasPrefix(l, "@@"):
			lines[i] = HunkStyle.Render(l)
		case strings.HasPrefix(l, "+"):
			lines[i] = AddedStyle.Render(l)
		case strings.HasPrefix(l, "-"):
			lines[i] = RemovedStyle.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
