package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/datename/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readAll drains a directory handle in small batches.
func readAll(t *testing.T, d types.DirHandle) []string {
	t.Helper()
	var names []string
	for {
		entries, err := d.ReadDir(1)
		for _, e := range entries {
			names = append(names, e.Name())
		}
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
	sort.Strings(names)
	return names
}

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, fsys.MkdirAll(filepath.Join(tmpDir, "new", "deep"), 0755))

	d, err := fsys.OpenDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "new"}, readAll(t, d))
	require.NoError(t, d.Close())

	src := filepath.Join(tmpDir, "a.txt")
	dst := filepath.Join(tmpDir, "new", "b.txt")
	require.NoError(t, fsys.Rename(src, dst))

	_, err = fsys.Lstat(src)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	info, err := fsys.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestNewOS_OpenDirMissing(t *testing.T) {
	_, err := NewOS().OpenDir(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNewAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	fsys := NewAferoFS(mem)

	require.NoError(t, fsys.MkdirAll("/src/sub", 0755))
	require.NoError(t, afero.WriteFile(mem, "/src/one.jpg", []byte("1"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/src/two.jpg", []byte("2"), 0644))

	d, err := fsys.OpenDir("/src")
	require.NoError(t, err)
	assert.Equal(t, []string{"one.jpg", "sub", "two.jpg"}, readAll(t, d))
	require.NoError(t, d.Close())

	require.NoError(t, fsys.Rename("/src/one.jpg", "/src/sub/one.jpg"))
	_, err = fsys.Lstat("/src/one.jpg")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	_, err = fsys.Stat("/src/sub/one.jpg")
	assert.NoError(t, err)
}

func TestNewAferoFS_OpenDirOnFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/file.txt", []byte("x"), 0644))

	_, err := NewAferoFS(mem).OpenDir("/file.txt")
	assert.True(t, errors.Is(err, fs.ErrInvalid))
}

func TestNewAferoFS_ListingSurvivesRenames(t *testing.T) {
	mem := afero.NewMemMapFs()
	fsys := NewAferoFS(mem)
	require.NoError(t, fsys.MkdirAll("/src/new", 0755))
	var want []string
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("f%02d.jpg", i)
		require.NoError(t, afero.WriteFile(mem, "/src/"+name, []byte(name), 0644))
		want = append(want, name)
	}
	want = append(want, "new")

	d, err := fsys.OpenDir("/src")
	require.NoError(t, err)
	first, err := d.ReadDir(3)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Empty the directory while the handle is open.
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("f%02d.jpg", i)
		require.NoError(t, fsys.Rename("/src/"+name, "/src/new/"+name))
	}

	names := []string{}
	for _, e := range first {
		names = append(names, e.Name())
	}
	names = append(names, readAll(t, d)...)
	sort.Strings(names)
	assert.Equal(t, want, names)
	require.NoError(t, d.Close())
}

func TestNewAferoFS_ReadDirAll(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/src/a.jpg", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/src/b.jpg", []byte("b"), 0644))

	d, err := NewAferoFS(mem).OpenDir("/src")
	require.NoError(t, err)
	defer func() { _ = d.Close() }()

	all, err := d.ReadDir(-1)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = d.ReadDir(1)
	assert.True(t, errors.Is(err, io.EOF))
}
