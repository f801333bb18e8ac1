package bootstrap

import (
	"context"
	"os"

	"github.com/arthur-debert/dotsetup/pkg/anchor"
	"github.com/arthur-debert/dotsetup/pkg/apply"
	"github.com/arthur-debert/dotsetup/pkg/crontab"
	"github.com/arthur-debert/dotsetup/pkg/launchagent"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/manifest"
	"github.com/arthur-debert/dotsetup/pkg/region"
	"github.com/arthur-debert/dotsetup/pkg/types"
	"github.com/rs/zerolog"
)

// Mode selects what a run does with the declared targets.
type Mode string

const (
	// ModeApply converges every target to its declared state.
	ModeApply Mode = "apply"
	// ModeClean removes every managed block, cron region and LaunchAgent
	// the manifest declares. Anchor lines are shared with the user and are
	// left alone.
	ModeClean Mode = "clean"
)

// Options configure a Runner.
type Options struct {
	DryRun bool
	// Comment is the marker comment leader for blocks that set none.
	Comment string
	// FileMode applies to files the runner creates.
	FileMode os.FileMode
	// LaunchAgentsDir is where plists are written.
	LaunchAgentsDir string
}

// Runner applies manifests.
type Runner struct {
	opts   Options
	files  *apply.Applier
	cron   *crontab.Manager
	agents *launchagent.Writer
	logger zerolog.Logger
}

// New returns a Runner writing files through fs and the crontab through
// table.
func New(fs types.FS, table crontab.Table, opts Options) *Runner {
	if opts.Comment == "" {
		opts.Comment = region.DefaultComment
	}
	return &Runner{
		opts:   opts,
		files:  apply.New(fs, apply.Options{DryRun: opts.DryRun, Mode: opts.FileMode}),
		cron:   crontab.NewManager(table, opts.DryRun),
		agents: launchagent.NewWriter(fs, opts.LaunchAgentsDir, opts.DryRun),
		logger: logging.GetLogger("bootstrap"),
	}
}

// Run processes every target of m in mode and returns the report. Errors
// are recorded per target; Run itself does not fail.
func (r *Runner) Run(ctx context.Context, m *manifest.Manifest, mode Mode) *Report {
	defer logging.LogOperationStart(r.logger, string(mode))()

	report := &Report{Mode: mode, DryRun: r.opts.DryRun}
	if mode == ModeApply {
		report.Notes = m.Notes
	}

	for _, b := range m.Blocks {
		res := Result{Kind: KindBlock, Name: b.Label(), Path: b.File}
		if !r.alive(ctx, &res, report) {
			continue
		}
		var out apply.Outcome
		var err error
		if mode == ModeClean {
			out, err = r.files.RemoveBlock(b.File, b.Markers(r.opts.Comment))
		} else {
			out, err = r.files.Block(b.File, b.Markers(r.opts.Comment), b.Lines)
		}
		r.record(report, res, fileResult(out), err)
	}

	if mode == ModeApply {
		for _, a := range m.Anchors {
			res := Result{Kind: KindAnchor, Name: a.Prefix, Path: a.File}
			if !r.alive(ctx, &res, report) {
				continue
			}
			format, err := anchor.Lookup(a.Format, a.Separator, a.Quote)
			if err != nil {
				r.record(report, res, res, err)
				continue
			}
			out, err := r.files.Anchor(a.File, a.Prefix, format, a.Tokens)
			r.record(report, res, fileResult(out), err)
		}
	}

	for _, c := range m.Cron {
		res := Result{Kind: KindCron, Name: c.Label(), Path: "crontab"}
		if !r.alive(ctx, &res, report) {
			continue
		}
		var out crontab.Outcome
		var err error
		if mode == ModeClean {
			out, err = r.cron.Remove(ctx, c.Markers())
		} else {
			var body []string
			if body, err = crontab.Render(c.Jobs); err == nil {
				out, err = r.cron.Reconcile(ctx, c.Markers(), body)
			}
		}
		r.record(report, res, cronResult(out), err)
	}

	for _, a := range m.LaunchAgents {
		res := Result{Kind: KindLaunchAgent, Name: a.Label, Path: r.agents.PathFor(a.Label)}
		if !r.alive(ctx, &res, report) {
			continue
		}
		var out launchagent.Outcome
		var err error
		if mode == ModeClean {
			out, err = r.agents.Remove(a.Label)
		} else {
			out, err = r.agents.Apply(a)
		}
		r.record(report, res, Result{Status: status(out.Changed), Created: out.Created, Diff: out.Diff}, err)
	}

	r.logger.Info().
		Int("changed", report.Count(StatusChanged)).
		Int("unchanged", report.Count(StatusUnchanged)).
		Int("failed", report.Count(StatusFailed)).
		Bool("dryRun", r.opts.DryRun).
		Msg("Run finished")
	return report
}

// alive records a failure for res when ctx is done, so an interrupted run
// still reports every target it did not reach.
func (r *Runner) alive(ctx context.Context, res *Result, report *Report) bool {
	if err := ctx.Err(); err != nil {
		res.Err = err
		report.add(*res)
		return false
	}
	return true
}

// record merges the outcome fields of out into the identity fields of res.
func (r *Runner) record(report *Report, res, out Result, err error) {
	res.Status = out.Status
	res.Created = out.Created
	res.Diff = out.Diff
	res.Warnings = out.Warnings
	res.Err = err
	if err != nil {
		r.logger.Error().Err(err).
			Str("kind", string(res.Kind)).
			Str("name", res.Name).
			Msg("Target failed")
	}
	report.add(res)
}

func fileResult(out apply.Outcome) Result {
	return Result{
		Status:   status(out.Changed),
		Created:  out.Created,
		Diff:     out.Diff,
		Warnings: out.Warnings,
	}
}

func cronResult(out crontab.Outcome) Result {
	res := Result{Status: status(out.Changed), Diff: out.Diff}
	for _, w := range out.Warnings {
		res.Warnings = append(res.Warnings, w.Message)
	}
	return res
}

func status(changed bool) Status {
	if changed {
		return StatusChanged
	}
	return StatusUnchanged
}
