package crontab

import (
	"context"

	"github.com/arthur-debert/dotsetup/pkg/diff"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/region"
	"github.com/rs/zerolog"
)

// Outcome describes what a crontab operation did, or would do in dry-run.
type Outcome struct {
	Changed  bool
	Inserted bool
	Removed  bool
	Before   []string
	After    []string
	Diff     string
	Warnings []region.Warning
}

// Manager reconciles managed regions in a crontab Table.
type Manager struct {
	table  Table
	dryRun bool
	logger zerolog.Logger
}

// NewManager returns a Manager over table. In dry-run mode nothing is
// installed.
func NewManager(table Table, dryRun bool) *Manager {
	return &Manager{
		table:  table,
		dryRun: dryRun,
		logger: logging.GetLogger("crontab"),
	}
}

// Reconcile makes the region delimited by m hold exactly body. The table is
// only written when its content changes.
func (mg *Manager) Reconcile(ctx context.Context, m region.Markers, body []string) (Outcome, error) {
	return mg.apply(ctx, m, func(current []string) (region.Result, error) {
		return region.Reconcile(current, m, body)
	})
}

// Remove deletes the region delimited by m from the table.
func (mg *Manager) Remove(ctx context.Context, m region.Markers) (Outcome, error) {
	return mg.apply(ctx, m, func(current []string) (region.Result, error) {
		return region.Remove(current, m)
	})
}

// Clear drops the whole crontab, managed or not.
func (mg *Manager) Clear(ctx context.Context) (Outcome, error) {
	current, err := mg.acquire(ctx)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Before: current, Changed: len(current) > 0, Removed: len(current) > 0}
	if !out.Changed {
		return out, nil
	}
	out.Diff = diff.Lines("crontab", current, nil)
	if mg.dryRun {
		mg.logger.Info().Msg("Dry run mode - crontab would be cleared")
		return out, nil
	}

	if c, ok := mg.table.(Clearer); ok {
		err = c.Clear(ctx)
	} else {
		err = mg.table.Write(ctx, nil)
	}
	if err != nil {
		return Outcome{Before: current}, asWriteError(err)
	}
	return out, nil
}

func (mg *Manager) apply(ctx context.Context, m region.Markers, op func([]string) (region.Result, error)) (Outcome, error) {
	current, err := mg.acquire(ctx)
	if err != nil {
		return Outcome{}, err
	}

	res, err := op(current)
	if err != nil {
		return Outcome{Before: current}, err
	}

	out := Outcome{
		Changed:  res.Changed,
		Inserted: res.Inserted && res.Changed,
		Removed:  res.Removed,
		Before:   current,
		After:    res.Lines,
		Warnings: res.Warnings,
	}
	for _, w := range res.Warnings {
		mg.logger.Warn().
			Str("kind", string(w.Kind)).
			Int("line", w.Line).
			Str("markers", m.String()).
			Msg(w.Message)
	}
	if !res.Changed {
		mg.logger.Debug().Str("markers", m.String()).Msg("Crontab already up to date")
		return out, nil
	}

	out.Diff = diff.Lines("crontab", current, res.Lines)
	if mg.dryRun {
		mg.logger.Info().Str("markers", m.String()).Msg("Dry run mode - crontab would be updated")
		return out, nil
	}

	if err := mg.table.Write(ctx, res.Lines); err != nil {
		return Outcome{Before: current, Warnings: res.Warnings}, asWriteError(err)
	}
	mg.logger.Info().Str("markers", m.String()).Msg("Crontab updated")
	return out, nil
}

func (mg *Manager) acquire(ctx context.Context) ([]string, error) {
	current, err := mg.table.Read(ctx)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrCrontabUnavailable) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrCrontabUnavailable, "failed to read crontab")
	}
	return current, nil
}

func asWriteError(err error) error {
	if errors.IsErrorCode(err, errors.ErrCrontabWrite) {
		return err
	}
	return errors.Wrap(err, errors.ErrCrontabWrite, "failed to install crontab")
}
