package filesystem

import (
	"io"
	"io/fs"

	"github.com/arthur-debert/datename/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	// Only some afero backends (OsFs, BasePathFs...) know about symlinks.
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) OpenDir(name string) (types.DirHandle, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	f, err := a.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &aferoDir{f: f}, nil
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}

// aferoDir adapts afero's Readdir (FileInfo based) to types.DirHandle. The
// listing is captured on the first ReadDir; MemMapFs indexes into the live
// directory, so renames between batches would otherwise skip entries.
type aferoDir struct {
	f       afero.File
	entries []fs.DirEntry
	loaded  bool
}

func (d *aferoDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if !d.loaded {
		infos, err := d.f.Readdir(-1)
		if err != nil {
			return nil, err
		}
		d.entries = make([]fs.DirEntry, len(infos))
		for i, info := range infos {
			d.entries[i] = fs.FileInfoToDirEntry(info)
		}
		d.loaded = true
	}

	if n <= 0 {
		rest := d.entries
		d.entries = nil
		return rest, nil
	}
	if len(d.entries) == 0 {
		return nil, io.EOF
	}
	if n > len(d.entries) {
		n = len(d.entries)
	}
	batch := d.entries[:n]
	d.entries = d.entries[n:]
	return batch, nil
}

func (d *aferoDir) Close() error {
	return d.f.Close()
}
