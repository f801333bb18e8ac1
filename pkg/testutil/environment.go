package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dotsetup/pkg/filesystem"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a home directory and a filesystem rooted at it.
type TestEnvironment struct {
	HomeDir string
	FS      types.FS
	Type    EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment and points HOME at it.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.HomeDir = "/virtual/home"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.HomeDir = filepath.Join(t.TempDir(), "home")
		env.FS = filesystem.NewOS()
	}

	if err := env.FS.MkdirAll(env.HomeDir, 0755); err != nil {
		t.Fatalf("Failed to create home directory: %v", err)
	}
	t.Setenv("HOME", env.HomeDir)

	return env
}

// Path joins rel onto the home directory.
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}

// WriteFile creates rel under the home directory with content.
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()

	path := env.Path(rel)
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", rel, err)
	}
	return path
}

// ReadFile returns the content of rel under the home directory.
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()

	data, err := env.FS.ReadFile(env.Path(rel))
	if err != nil {
		env.t.Fatalf("Failed to read file %s: %v", rel, err)
	}
	return string(data)
}

// Text joins lines with newlines and a final newline, the way most dotfiles
// are laid out.
func Text(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
