package bootstrap

import (
	"github.com/arthur-debert/dotsetup/pkg/manifest"
)

// Kind identifies the type of a target.
type Kind string

const (
	KindBlock       Kind = "block"
	KindAnchor      Kind = "anchor"
	KindCron        Kind = "cron"
	KindLaunchAgent Kind = "launch_agent"
)

// Status is the outcome of one target.
type Status string

const (
	StatusUnchanged Status = "unchanged"
	StatusChanged   Status = "changed"
	StatusFailed    Status = "failed"
)

// Result is the outcome of one target.
type Result struct {
	Kind     Kind     `json:"kind"`
	Name     string   `json:"name"`
	Path     string   `json:"path,omitempty"`
	Status   Status   `json:"status"`
	Created  bool     `json:"created,omitempty"`
	Diff     string   `json:"diff,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Err      error    `json:"-"`
	Error    string   `json:"error,omitempty"`
}

// Report collects the results of a run in processing order.
type Report struct {
	Mode    Mode            `json:"mode"`
	DryRun  bool            `json:"dry_run"`
	Results []Result        `json:"results"`
	Notes   []manifest.Note `json:"notes,omitempty"`
}

func (r *Report) add(res Result) {
	if res.Err != nil {
		res.Status = StatusFailed
		res.Error = res.Err.Error()
	}
	r.Results = append(r.Results, res)
}

// Count returns how many results have status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// HasFailures reports whether any target failed.
func (r *Report) HasFailures() bool {
	return r.Count(StatusFailed) > 0
}

// HasChanges reports whether any target changed, or would in dry-run.
func (r *Report) HasChanges() bool {
	return r.Count(StatusChanged) > 0
}
