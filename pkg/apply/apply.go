// Package apply is the file boundary around the reconciliation engine.
//
// An Applier reads a target file, runs a pure transform from the region or
// anchor packages over its lines, and writes the result back in a single
// atomic replace, only when the content actually changed. A missing file
// reads as empty and is created, with its parent directories, on write.
package apply

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotsetup/pkg/anchor"
	"github.com/arthur-debert/dotsetup/pkg/diff"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/lines"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/region"
	"github.com/arthur-debert/dotsetup/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultMode is used for files the applier creates.
const DefaultMode os.FileMode = 0644

// Outcome describes what happened to one target file.
type Outcome struct {
	Target   string
	Path     string
	Changed  bool
	Created  bool
	Diff     string
	Warnings []string
}

// Options configure an Applier.
type Options struct {
	DryRun bool
	// Mode applies to created files. Existing files keep their mode.
	Mode os.FileMode
}

// Applier applies line transforms to files.
type Applier struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// New returns an Applier working on fs.
func New(fs types.FS, opts Options) *Applier {
	if opts.Mode == 0 {
		opts.Mode = DefaultMode
	}
	return &Applier{
		fs:     fs,
		opts:   opts,
		logger: logging.GetLogger("apply"),
	}
}

// edit is what a transform reports back to the applier.
type edit struct {
	lines    []string
	changed  bool
	warnings []string
}

// Block makes the managed region m in path hold exactly body.
func (a *Applier) Block(path string, m region.Markers, body []string) (Outcome, error) {
	return a.apply(path, m.Start, func(content []string) (edit, error) {
		res, err := region.Reconcile(content, m, body)
		if err != nil {
			return edit{}, err
		}
		return edit{lines: res.Lines, changed: res.Changed, warnings: regionWarnings(res.Warnings)}, nil
	})
}

// RemoveBlock deletes the managed region m from path, if present.
func (a *Applier) RemoveBlock(path string, m region.Markers) (Outcome, error) {
	return a.apply(path, m.Start, func(content []string) (edit, error) {
		res, err := region.Remove(content, m)
		if err != nil {
			return edit{}, err
		}
		return edit{lines: res.Lines, changed: res.Changed, warnings: regionWarnings(res.Warnings)}, nil
	})
}

// Anchor aligns the prefix line in path to tokens.
func (a *Applier) Anchor(path, prefix string, format anchor.Format, tokens []string) (Outcome, error) {
	return a.apply(path, prefix, func(content []string) (edit, error) {
		res, err := anchor.Align(content, prefix, format, tokens)
		if err != nil {
			return edit{}, err
		}
		var warnings []string
		for _, line := range res.Shadowed {
			warnings = append(warnings, fmt.Sprintf("line %d: another %q line is left untouched", line, prefix))
		}
		return edit{lines: res.Lines, changed: res.Changed, warnings: warnings}, nil
	})
}

func regionWarnings(ws []region.Warning) []string {
	var out []string
	for _, w := range ws {
		out = append(out, fmt.Sprintf("line %d: %s", w.Line, w.Message))
	}
	return out
}

func (a *Applier) apply(path, target string, transform func([]string) (edit, error)) (Outcome, error) {
	out := Outcome{Target: target, Path: path}
	logger := a.logger.With().Str("path", path).Logger()

	data, exists, mode, err := a.read(path)
	if err != nil {
		return out, err
	}

	doc := lines.Parse(data)
	res, err := transform(doc.Lines)
	if err != nil {
		if se, ok := err.(*errors.SetupError); ok {
			err = se.WithDetail("path", path)
		}
		logger.Debug().Err(err).Msg("Target left untouched")
		return out, err
	}
	out.Warnings = res.warnings
	for _, w := range res.warnings {
		logger.Warn().Str("target", target).Msg(w)
	}

	if !res.changed {
		logger.Debug().Str("target", target).Msg("Already up to date")
		return out, nil
	}

	updated := doc.WithLines(res.lines)
	out.Changed = true
	out.Created = !exists
	out.Diff = diff.Unified(filepath.Base(path), doc.String(), updated.String())

	if a.opts.DryRun {
		logger.Info().Str("target", target).Msg("Dry run mode - file would be updated")
		return out, nil
	}

	if !exists {
		if err := a.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return out, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path).
				WithDetail("path", path)
		}
	}
	if err := a.fs.WriteFile(path, updated.Bytes(), mode); err != nil {
		return out, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("target", target).Bool("created", out.Created).Msg("File updated")
	return out, nil
}

// read returns the file content, whether it exists, and the mode to write
// it back with.
func (a *Applier) read(path string) ([]byte, bool, os.FileMode, error) {
	info, err := a.fs.Stat(path)
	if os.IsNotExist(err) {
		return nil, false, a.opts.Mode, nil
	}
	if err != nil {
		return nil, false, 0, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, false, 0, errors.Newf(errors.ErrFileAccess, "%s is a directory", path).
			WithDetail("path", path)
	}

	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, false, 0, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
			WithDetail("path", path)
	}
	return data, true, info.Mode().Perm(), nil
}
