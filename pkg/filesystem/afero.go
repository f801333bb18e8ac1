package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/dotsetup/pkg/types"
	"github.com/spf13/afero"
)

// Afero adapts any afero.Fs to types.FS. Tests use it over a MemMapFs so
// reconciliation runs without touching the disk.
type Afero struct {
	backend afero.Fs
}

var _ types.FS = (*Afero)(nil)

// NewAferoFS wraps backend.
func NewAferoFS(backend afero.Fs) *Afero {
	return &Afero{backend: backend}
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() *Afero {
	return NewAferoFS(afero.NewMemMapFs())
}

func (a *Afero) Stat(name string) (fs.FileInfo, error) {
	return a.backend.Stat(name)
}

// ReadFile refuses directories, which MemMapFs would otherwise read as empty.
func (a *Afero) ReadFile(name string) ([]byte, error) {
	if isDir, err := afero.IsDir(a.backend, name); err != nil {
		return nil, err
	} else if isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.backend, name)
}

func (a *Afero) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.backend, name, data, perm)
}

func (a *Afero) MkdirAll(dir string, perm fs.FileMode) error {
	return a.backend.MkdirAll(dir, perm)
}

func (a *Afero) Remove(name string) error {
	return a.backend.Remove(name)
}
