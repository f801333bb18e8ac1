package style

import (
	"github.com/charmbracelet/lipgloss"
)

// palette maps each role in a run report to a colour pair. lipgloss picks
// the light or dark variant from the terminal background.
type palette struct {
	heading lipgloss.AdaptiveColor
	muted   lipgloss.AdaptiveColor
	path    lipgloss.AdaptiveColor
	hunk    lipgloss.AdaptiveColor

	changed   lipgloss.AdaptiveColor
	unchanged lipgloss.AdaptiveColor
	warning   lipgloss.AdaptiveColor
	failed    lipgloss.AdaptiveColor
}

var colors = palette{
	heading: lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#E6EDF3"},
	muted:   lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"},
	path:    lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#B1BAC4"},
	hunk:    lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#58A6FF"},

	changed:   lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#58A6FF"},
	unchanged: lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"},
	warning:   lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"},
	failed:    lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"},
}
