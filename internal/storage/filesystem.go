package storage

import (
	"os"

	"github.com/spf13/afero"
)

// FileSystem is what the document store needs from a filesystem.
// Any afero.Fs satisfies it through NewAferoFileSystem.
type FileSystem interface {
	MkdirAll(path string, perm os.FileMode) error
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	ReadDir(name string) ([]os.FileInfo, error)
	Remove(name string) error
	RemoveAll(path string) error
}

// documentFS embeds afero.Fs for the plain operations and adds the
// whole-file helpers afero keeps as package functions.
type documentFS struct {
	afero.Fs
}

func (d documentFS) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(d.Fs, name)
}

// ReadDir lists a directory sorted by name
func (d documentFS) ReadDir(name string) ([]os.FileInfo, error) {
	return afero.ReadDir(d.Fs, name)
}

// WriteFile writes through a temp file and a rename so readers never see a partial document
func (d documentFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	tmp := name + ".tmp"
	if err := afero.WriteFile(d.Fs, tmp, data, perm); err != nil {
		return err
	}
	if err := d.Rename(tmp, name); err != nil {
		_ = d.Remove(tmp)
		return err
	}
	return nil
}

// NewOSFileSystem returns a FileSystem on the real disk
func NewOSFileSystem() FileSystem {
	return NewAferoFileSystem(afero.NewOsFs())
}

// NewMemMapFileSystem returns an in-memory FileSystem, mainly for tests
func NewMemMapFileSystem() FileSystem {
	return NewAferoFileSystem(afero.NewMemMapFs())
}

// NewAferoFileSystem wraps any afero.Fs, e.g. a read-only or base-path filesystem
func NewAferoFileSystem(fs afero.Fs) FileSystem {
	return documentFS{Fs: fs}
}
