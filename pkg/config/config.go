package config

import (
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/dotsetup/pkg/errors"
)

// Output formats accepted in output.format.
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the resolved application configuration.
type Config struct {
	Manifest ManifestConfig `koanf:"manifest"`
	Markers  MarkersConfig  `koanf:"markers"`
	Crontab  CrontabConfig  `koanf:"crontab"`
	Output   OutputConfig   `koanf:"output"`
	Files    FilesConfig    `koanf:"files"`
}

// ManifestConfig locates the manifest used when none is given on the
// command line.
type ManifestConfig struct {
	Path string `koanf:"path"`
}

// MarkersConfig controls how section markers are generated for named
// blocks.
type MarkersConfig struct {
	Comment string `koanf:"comment"`
}

// CrontabConfig controls access to the host scheduler.
type CrontabConfig struct {
	Binary  string        `koanf:"binary"`
	Timeout time.Duration `koanf:"timeout"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format string `koanf:"format"`
	Diff   bool   `koanf:"diff"`
}

// FilesConfig holds the permissions used for files the tool creates.
type FilesConfig struct {
	Mode os.FileMode `koanf:"mode"`
}

// Validate rejects values the rest of the tool cannot work with.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatAuto, FormatTerm, FormatText, FormatJSON:
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown output format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	if strings.TrimSpace(c.Markers.Comment) == "" {
		return errors.New(errors.ErrConfigParse, "markers.comment must not be empty").
			WithDetail("key", "markers.comment")
	}
	if strings.TrimSpace(c.Crontab.Binary) == "" {
		return errors.New(errors.ErrConfigParse, "crontab.binary must not be empty").
			WithDetail("key", "crontab.binary")
	}
	if c.Crontab.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigParse, "crontab.timeout must be positive, got %s", c.Crontab.Timeout).
			WithDetail("key", "crontab.timeout")
	}
	if c.Files.Mode == 0 || c.Files.Mode&^os.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigParse, "files.mode must be a permission mode, got %o", uint32(c.Files.Mode)).
			WithDetail("key", "files.mode")
	}
	return nil
}
