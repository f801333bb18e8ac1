package manifest

import (
	"fmt"

	"github.com/arthur-debert/dotsetup/pkg/crontab"
	"github.com/arthur-debert/dotsetup/pkg/launchagent"
	"github.com/arthur-debert/dotsetup/pkg/region"
)

// Manifest is the declared target state.
type Manifest struct {
	Blocks       []Block             `toml:"block" yaml:"block"`
	Anchors      []Anchor            `toml:"anchor" yaml:"anchor"`
	Cron         []Cron              `toml:"cron" yaml:"cron"`
	LaunchAgents []launchagent.Agent `toml:"launch_agent" yaml:"launch_agent"`
	Notes        []Note              `toml:"note" yaml:"note"`

	// Source is the file the manifest was loaded from.
	Source string `toml:"-" yaml:"-"`
}

// Block is a managed region in a file. It is identified either by a name,
// from which section markers are derived, or by explicit markers.
type Block struct {
	File    string   `toml:"file" yaml:"file"`
	Name    string   `toml:"name" yaml:"name"`
	Comment string   `toml:"comment" yaml:"comment"`
	Start   string   `toml:"start" yaml:"start"`
	End     string   `toml:"end" yaml:"end"`
	Lines   []string `toml:"lines" yaml:"lines"`
}

// Markers returns the region markers, deriving them from the name when no
// explicit pair is set. defaultComment applies when the block has none.
func (b Block) Markers(defaultComment string) region.Markers {
	if b.Start != "" || b.End != "" {
		return region.Markers{Start: b.Start, End: b.End}
	}
	comment := b.Comment
	if comment == "" {
		comment = defaultComment
	}
	return region.SectionMarkers(b.Name, comment)
}

// Label names the block for reports.
func (b Block) Label() string {
	if b.Name != "" {
		return b.Name
	}
	return b.Start
}

// Anchor is a prefix-identified line holding a token list.
type Anchor struct {
	File      string   `toml:"file" yaml:"file"`
	Prefix    string   `toml:"prefix" yaml:"prefix"`
	Format    string   `toml:"format" yaml:"format"`
	Separator string   `toml:"separator" yaml:"separator"`
	Quote     string   `toml:"quote" yaml:"quote"`
	Tokens    []string `toml:"tokens" yaml:"tokens"`
}

// Cron is a managed region of crontab entries.
type Cron struct {
	Name  string          `toml:"name" yaml:"name"`
	Start string          `toml:"start" yaml:"start"`
	End   string          `toml:"end" yaml:"end"`
	Jobs  []crontab.Entry `toml:"jobs" yaml:"jobs"`
}

// Markers returns the crontab region markers. Crontab comments always use
// "#".
func (c Cron) Markers() region.Markers {
	if c.Start != "" || c.End != "" {
		return region.Markers{Start: c.Start, End: c.End}
	}
	return region.SectionMarkers(c.Name, region.DefaultComment)
}

// Label names the cron block for reports.
func (c Cron) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Start
}

// Note is a manual step the user has to perform, shown after a run.
type Note struct {
	Title string `toml:"title" yaml:"title" json:"title"`
	Body  string `toml:"body" yaml:"body" json:"body,omitempty"`
}

// Empty reports whether the manifest declares nothing.
func (m *Manifest) Empty() bool {
	return len(m.Blocks)+len(m.Anchors)+len(m.Cron)+len(m.LaunchAgents)+len(m.Notes) == 0
}

// String summarizes the manifest for logs.
func (m *Manifest) String() string {
	return fmt.Sprintf("%s (%d blocks, %d anchors, %d cron, %d launch agents, %d notes)",
		m.Source, len(m.Blocks), len(m.Anchors), len(m.Cron), len(m.LaunchAgents), len(m.Notes))
}
