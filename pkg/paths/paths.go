package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotsetup/pkg/errors"
)

// Environment variable names
const (
	EnvConfigDir = "DOTSETUP_CONFIG_DIR"
	EnvStateDir  = "DOTSETUP_STATE_DIR"
	EnvDataDir   = "DOTSETUP_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	DirName          = "dotsetup"
	ConfigFileName   = "config.toml"
	ManifestFileName = "manifest.toml"
	LogFileName      = "dotsetup.log"
	LaunchAgentsDir  = "Library/LaunchAgents"
)

// Paths resolves the locations dotsetup reads and writes.
type Paths interface {
	ConfigDir() string
	StateDir() string
	DataDir() string
	ConfigFile() string
	DefaultManifest() string
	LogFilePath() string
	LaunchAgentsDir() string
}

type paths struct {
	home   string
	config string
	state  string
	data   string
}

// New resolves the XDG directories, honouring DOTSETUP_* overrides.
func New() (Paths, error) {
	home, err := GetHomeDirectory()
	if err != nil {
		return nil, err
	}

	p := &paths{home: home}
	p.config = dirFor(EnvConfigDir, "XDG_CONFIG_HOME", xdg.ConfigHome)
	p.state = dirFor(EnvStateDir, "XDG_STATE_HOME", xdg.StateHome)
	p.data = dirFor(EnvDataDir, "XDG_DATA_HOME", xdg.DataHome)
	return p, nil
}

// dirFor prefers the tool override, then the live XDG variable (xdg reads
// the environment once at start-up), then xdg's resolved default.
func dirFor(override, xdgVar, fallback string) string {
	if dir := os.Getenv(override); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv(xdgVar); dir != "" {
		return filepath.Join(dir, DirName)
	}
	return filepath.Join(fallback, DirName)
}

func (p *paths) ConfigDir() string { return p.config }
func (p *paths) StateDir() string  { return p.state }
func (p *paths) DataDir() string   { return p.data }

// ConfigFile returns the user configuration file path.
func (p *paths) ConfigFile() string {
	return filepath.Join(p.config, ConfigFileName)
}

// DefaultManifest returns where the manifest lives when none is given.
func (p *paths) DefaultManifest() string {
	return filepath.Join(p.config, ManifestFileName)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.state, LogFileName)
}

// LaunchAgentsDir returns the per-user LaunchAgents directory.
func (p *paths) LaunchAgentsDir() string {
	return filepath.Join(p.home, LaunchAgentsDir)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a leading ~ to the home directory. ~user forms are
// returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// Expand resolves a manifest path: environment variables first, then ~,
// then relative paths against base. The result is cleaned.
func Expand(path, base string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New(errors.ErrInvalidInput, "path is empty")
	}

	expanded := ExpandHome(os.ExpandEnv(path))
	if !filepath.IsAbs(expanded) {
		if base == "" {
			abs, err := filepath.Abs(expanded)
			if err != nil {
				return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve path %s", path)
			}
			return abs, nil
		}
		expanded = filepath.Join(base, expanded)
	}
	return filepath.Clean(expanded), nil
}
