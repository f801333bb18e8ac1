package types

import (
	"io/fs"
)

// FS is the filesystem interface the file boundary needs. Writes are
// expected to replace the whole file as one unit.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
}
