package crontab

import (
	"context"
	"os"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/executor"
	"github.com/arthur-debert/dotsetup/pkg/lines"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultBinary is the scheduler's install program.
const DefaultBinary = "crontab"

// Table is the installed crontab, read and replaced as a whole.
type Table interface {
	Read(ctx context.Context) ([]string, error)
	Write(ctx context.Context, lines []string) error
}

// Clearer is implemented by tables that can drop the whole crontab.
type Clearer interface {
	Clear(ctx context.Context) error
}

// SystemTable is the current user's crontab, managed through the crontab
// binary.
type SystemTable struct {
	runner executor.Runner
	binary string
	logger zerolog.Logger
}

// NewSystemTable returns a table backed by binary (DefaultBinary if empty).
func NewSystemTable(runner executor.Runner, binary string) *SystemTable {
	if binary == "" {
		binary = DefaultBinary
	}
	return &SystemTable{
		runner: runner,
		binary: binary,
		logger: logging.GetLogger("crontab.table"),
	}
}

// Read returns the installed table. A user without a crontab has an empty
// table.
func (s *SystemTable) Read(ctx context.Context) ([]string, error) {
	res, err := s.runner.Run(ctx, s.binary, "-l")
	if err != nil {
		if noCrontab(res.Stderr) {
			s.logger.Debug().Msg("No crontab installed, starting from an empty table")
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrCrontabUnavailable, "failed to read crontab").
			WithDetail("binary", s.binary)
	}
	return lines.Parse([]byte(res.Stdout)).Lines, nil
}

// Write installs content as the new table. The content goes to a temporary
// file first and the scheduler installs it in one step; if that fails the
// old table remains.
func (s *SystemTable) Write(ctx context.Context, content []string) error {
	tmp, err := os.CreateTemp("", "dotsetup-crontab-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrCrontabWrite, "failed to create temporary crontab file")
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", tmp.Name()).Msg("Failed to remove temporary crontab file")
		}
	}()

	doc := lines.Document{TrailingNewline: true}.WithLines(content)
	if _, err := tmp.Write(doc.Bytes()); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, errors.ErrCrontabWrite, "failed to write temporary crontab file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCrontabWrite, "failed to write temporary crontab file")
	}

	if _, err := s.runner.Run(ctx, s.binary, tmp.Name()); err != nil {
		return errors.Wrap(err, errors.ErrCrontabWrite, "failed to install crontab").
			WithDetail("binary", s.binary)
	}

	s.logger.Info().Int("lines", len(content)).Msg("Installed crontab")
	return nil
}

// Clear removes the user's crontab entirely.
func (s *SystemTable) Clear(ctx context.Context) error {
	res, err := s.runner.Run(ctx, s.binary, "-r")
	if err != nil {
		if noCrontab(res.Stderr) {
			return nil
		}
		return errors.Wrap(err, errors.ErrCrontabWrite, "failed to remove crontab").
			WithDetail("binary", s.binary)
	}
	s.logger.Info().Msg("Removed crontab")
	return nil
}

func noCrontab(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "no crontab for")
}
