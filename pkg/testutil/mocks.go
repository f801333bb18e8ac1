package testutil

import (
	"context"
	"io/fs"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/executor"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Call records one MockRunner invocation.
type Call struct {
	Name string
	Args []string
}

// MockRunner is a mock implementation of executor.Runner.
type MockRunner struct {
	RunFunc func(ctx context.Context, name string, args ...string) (executor.Result, error)
	Calls   []Call
}

// Run records the call and delegates to RunFunc.
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (executor.Result, error) {
	m.Calls = append(m.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return executor.Result{}, nil
}

// FakeTable is an in-memory crontab.
type FakeTable struct {
	Lines    []string
	ReadErr  error
	WriteErr error
	Reads    int
	Writes   int
}

// NewFakeTable returns a table holding lines.
func NewFakeTable(lines ...string) *FakeTable {
	return &FakeTable{Lines: lines}
}

func (f *FakeTable) Read(_ context.Context) ([]string, error) {
	f.Reads++
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return append([]string(nil), f.Lines...), nil
}

// Write installs lines unless WriteErr is set, in which case the previous
// table stays as it was.
func (f *FakeTable) Write(_ context.Context, lines []string) error {
	f.Writes++
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Lines = append([]string(nil), lines...)
	return nil
}

func (f *FakeTable) Clear(_ context.Context) error {
	f.Writes++
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Lines = nil
	return nil
}

// FailingFS wraps a types.FS and fails operations on chosen paths.
type FailingFS struct {
	types.FS
	ReadErrors  map[string]error
	WriteErrors map[string]error
}

// NewFailingFS wraps base with no failures configured.
func NewFailingFS(base types.FS) *FailingFS {
	return &FailingFS{
		FS:          base,
		ReadErrors:  make(map[string]error),
		WriteErrors: make(map[string]error),
	}
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	if err, ok := f.ReadErrors[name]; ok {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err, ok := f.WriteErrors[name]; ok {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

// CommandLine renders a recorded call as a shell-like string.
func (c Call) CommandLine() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}
