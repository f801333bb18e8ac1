package manifest

import (
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/anchor"
	"github.com/arthur-debert/dotsetup/pkg/crontab"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/region"
)

func invalid(kind string, index int, format string, args ...interface{}) *errors.SetupError {
	return errors.Newf(errors.ErrManifestInvalid, format, args...).
		WithDetail("kind", kind).
		WithDetail("index", index)
}

// Validate checks every target. It uses the default "#" comment to derive
// block markers; duplicate detection only depends on the declared names.
func (m *Manifest) Validate() error {
	type key struct{ file, marker string }
	seenBlocks := make(map[key]bool)

	for i, b := range m.Blocks {
		if strings.TrimSpace(b.File) == "" {
			return invalid("block", i, "block %d: file is required", i+1)
		}
		hasMarkers := b.Start != "" || b.End != ""
		if hasMarkers && (b.Start == "" || b.End == "") {
			return invalid("block", i, "block %d: start and end must be set together", i+1)
		}
		if !hasMarkers && strings.TrimSpace(b.Name) == "" {
			return invalid("block", i, "block %d: name or start/end markers are required", i+1)
		}
		markers := b.Markers(region.DefaultComment)
		if err := markers.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrManifestInvalid, "block %d: invalid markers", i+1).
				WithDetail("kind", "block").
				WithDetail("index", i)
		}
		k := key{b.File, markers.Start}
		if seenBlocks[k] {
			return invalid("block", i, "block %d: duplicate block %q for %s", i+1, b.Label(), b.File)
		}
		seenBlocks[k] = true
	}

	seenAnchors := make(map[key]bool)
	for i, a := range m.Anchors {
		if strings.TrimSpace(a.File) == "" {
			return invalid("anchor", i, "anchor %d: file is required", i+1)
		}
		if strings.TrimSpace(a.Prefix) == "" {
			return invalid("anchor", i, "anchor %d: prefix is required", i+1)
		}
		if _, err := anchor.Lookup(a.Format, a.Separator, a.Quote); err != nil {
			return errors.Wrapf(err, errors.ErrManifestInvalid, "anchor %d: invalid format", i+1).
				WithDetail("kind", "anchor").
				WithDetail("index", i)
		}
		k := key{a.File, a.Prefix}
		if seenAnchors[k] {
			return invalid("anchor", i, "anchor %d: duplicate prefix %q for %s", i+1, a.Prefix, a.File)
		}
		seenAnchors[k] = true
	}

	seenCron := make(map[string]bool)
	for i, c := range m.Cron {
		hasMarkers := c.Start != "" || c.End != ""
		if hasMarkers && (c.Start == "" || c.End == "") {
			return invalid("cron", i, "cron %d: start and end must be set together", i+1)
		}
		if !hasMarkers && strings.TrimSpace(c.Name) == "" {
			return invalid("cron", i, "cron %d: name or start/end markers are required", i+1)
		}
		if len(c.Jobs) == 0 {
			return invalid("cron", i, "cron %d: at least one job is required", i+1)
		}
		if _, err := crontab.Render(c.Jobs); err != nil {
			return errors.Wrapf(err, errors.ErrManifestInvalid, "cron %d: invalid job", i+1).
				WithDetail("kind", "cron").
				WithDetail("index", i)
		}
		markers := c.Markers()
		if err := markers.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrManifestInvalid, "cron %d: invalid markers", i+1).
				WithDetail("kind", "cron").
				WithDetail("index", i)
		}
		if seenCron[markers.Start] {
			return invalid("cron", i, "cron %d: duplicate cron block %q", i+1, c.Label())
		}
		seenCron[markers.Start] = true
	}

	seenAgents := make(map[string]bool)
	for i, a := range m.LaunchAgents {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrManifestInvalid, "launch agent %d: invalid", i+1).
				WithDetail("kind", "launch_agent").
				WithDetail("index", i)
		}
		if seenAgents[a.Label] {
			return invalid("launch_agent", i, "launch agent %d: duplicate label %q", i+1, a.Label)
		}
		seenAgents[a.Label] = true
	}

	for i, n := range m.Notes {
		if strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Body) == "" {
			return invalid("note", i, "note %d: title or body is required", i+1)
		}
	}
	return nil
}
