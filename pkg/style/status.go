package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status of a rendered target line.
type Status string

const (
	StatusChanged   Status = "changed"
	StatusUnchanged Status = "unchanged"
	StatusFailed    Status = "failed"
)

// KindVerbs defines past and future tense verbs for each target kind
var KindVerbs = map[string]struct {
	Past   string
	Future string
}{
	"block":        {Past: "updated in", Future: "will be updated in"},
	"anchor":       {Past: "aligned in", Future: "will be aligned in"},
	"cron":         {Past: "installed in", Future: "will be installed in"},
	"launch_agent": {Past: "written to", Future: "will be written to"},
}

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusChanged:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	case StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGreen)
	}
}

// Line describes one target for display.
type Line struct {
	Kind   string
	Name   string
	Path   string
	Status Status
	DryRun bool
	Clean  bool
}

// Symbol returns the indicator for status.
func Symbol(status Status) string {
	switch status {
	case StatusChanged:
		return SymbolChange
	case StatusFailed:
		return SymbolError
	default:
		return SymbolSuccess
	}
}

// Message describes what happened to the target, in past tense or, for a
// dry run, in future tense.
func (l Line) Message() string {
	switch l.Status {
	case StatusFailed:
		return fmt.Sprintf("failed in %s", l.Path)
	case StatusUnchanged:
		return fmt.Sprintf("up to date in %s", l.Path)
	}
	if l.Clean {
		if l.DryRun {
			return fmt.Sprintf("will be removed from %s", l.Path)
		}
		return fmt.Sprintf("removed from %s", l.Path)
	}
	verbs, ok := KindVerbs[l.Kind]
	if !ok {
		verbs.Past, verbs.Future = "changed in", "will change in"
	}
	if l.DryRun {
		return fmt.Sprintf("%s %s", verbs.Future, l.Path)
	}
	return fmt.Sprintf("%s %s", verbs.Past, l.Path)
}

// RenderLine renders a target status line. styled enables colours.
func RenderLine(l Line, styled bool) string {
	kind := fmt.Sprintf("%-12s", l.Kind)
	symbol := Symbol(l.Status)
	if styled {
		kind = StatusStyle(l.Status).Sprint(kind)
		switch l.Status {
		case StatusChanged:
			symbol = WarningStyle.Render(symbol)
		case StatusFailed:
			symbol = ErrorStyle.Render(symbol)
		default:
			symbol = SuccessStyle.Render(symbol)
		}
	}
	return fmt.Sprintf("%s %s : %s : %s", symbol, kind, l.Name, l.Message())
}
