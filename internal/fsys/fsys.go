// Package fsys is the filesystem seam shared by the directory tree and the
// editor session. Everything that touches disk goes through FS so the tree and
// the autosave controller can be exercised against fakes.
package fsys

import (
	"io/fs"
	"os"
)

// FS is the subset of filesystem operations the editor needs.
type FS interface {
	// ReadDir lists the immediate entries of a directory.
	ReadDir(path string) ([]fs.DirEntry, error)
	// Stat returns file info for path, following symlinks.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile returns the whole contents of path.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the contents of path with data.
	WriteFile(path string, data []byte) error
}

// DefaultFileMode is used when WriteFile has to create a file.
const DefaultFileMode = 0644

var (
	osReadDir   = os.ReadDir
	osStat      = os.Stat
	osReadFile  = os.ReadFile
	osWriteFile = os.WriteFile
)

var _ FS = OS{}

// OS is the FS backed by the host filesystem.
type OS struct{}

// ReadDir lists the entries of path in the order the OS returns them.
func (OS) ReadDir(path string) ([]fs.DirEntry, error) {
	return osReadDir(path)
}

// Stat returns file info for path.
func (OS) Stat(path string) (fs.FileInfo, error) {
	return osStat(path)
}

// ReadFile returns the contents of path.
func (OS) ReadFile(path string) ([]byte, error) {
	return osReadFile(path)
}

// WriteFile overwrites path with data. Existing permissions are kept.
func (OS) WriteFile(path string, data []byte) error {
	return osWriteFile(path, data, DefaultFileMode)
}
