package types

import (
	"io/fs"
)

// FS is the filesystem surface the renamer needs. The OS implementation
// lives in pkg/filesystem; tests use an in-memory afero filesystem.
type FS interface {
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow a trailing symlink. Implementations that
	// cannot tell symlinks apart may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	// OpenDir opens a directory for incremental reading.
	OpenDir(name string) (DirHandle, error)

	MkdirAll(path string, perm fs.FileMode) error

	// Rename moves oldpath to newpath in one step.
	Rename(oldpath, newpath string) error
}

// DirHandle is an open directory. It follows the contract of
// (*os.File).ReadDir: with n > 0 it returns at most n entries and io.EOF
// once the directory is exhausted.
type DirHandle interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}
