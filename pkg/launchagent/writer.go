package launchagent

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotsetup/pkg/diff"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/types"
	"github.com/rs/zerolog"
)

// Outcome describes what Apply or Remove did, or would do in dry-run.
type Outcome struct {
	Path    string
	Changed bool
	Created bool
	Removed bool
	Diff    string
}

// Writer installs agents into a LaunchAgents directory.
type Writer struct {
	fs     types.FS
	dir    string
	dryRun bool
	logger zerolog.Logger
}

// NewWriter returns a Writer for dir, usually ~/Library/LaunchAgents.
func NewWriter(fs types.FS, dir string, dryRun bool) *Writer {
	return &Writer{
		fs:     fs,
		dir:    dir,
		dryRun: dryRun,
		logger: logging.GetLogger("launchagent"),
	}
}

// PathFor returns the plist path for label.
func (w *Writer) PathFor(label string) string {
	return filepath.Join(w.dir, label+".plist")
}

// Apply writes the agent's plist unless the file already holds exactly the
// rendered content.
func (w *Writer) Apply(a Agent) (Outcome, error) {
	rendered, err := Render(a)
	if err != nil {
		return Outcome{}, err
	}

	path := w.PathFor(a.Label)
	out := Outcome{Path: path}

	current, err := w.fs.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(current, rendered) {
			w.logger.Debug().Str("path", path).Msg("LaunchAgent already up to date")
			return out, nil
		}
	case os.IsNotExist(err):
		out.Created = true
	default:
		return out, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
			WithDetail("path", path)
	}

	out.Changed = true
	out.Diff = diff.Unified(filepath.Base(path), string(current), string(rendered))
	if w.dryRun {
		w.logger.Info().Str("path", path).Msg("Dry run mode - LaunchAgent would be written")
		return out, nil
	}

	if err := w.fs.MkdirAll(w.dir, 0755); err != nil {
		return out, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", w.dir).
			WithDetail("path", w.dir)
	}
	if err := w.fs.WriteFile(path, rendered, 0644); err != nil {
		return out, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	w.logger.Info().Str("path", path).Str("label", a.Label).Msg("LaunchAgent written")
	return out, nil
}

// Remove deletes the agent's plist. A missing file is not an error.
func (w *Writer) Remove(label string) (Outcome, error) {
	path := w.PathFor(label)
	out := Outcome{Path: path}

	current, err := w.fs.ReadFile(path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return out, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
			WithDetail("path", path)
	}

	out.Changed = true
	out.Removed = true
	out.Diff = diff.Unified(filepath.Base(path), string(current), "")
	if w.dryRun {
		return out, nil
	}

	if err := w.fs.Remove(path); err != nil {
		return out, errors.Wrapf(err, errors.ErrFileWrite, "failed to remove %s", path).
			WithDetail("path", path)
	}
	w.logger.Info().Str("path", path).Msg("LaunchAgent removed")
	return out, nil
}
