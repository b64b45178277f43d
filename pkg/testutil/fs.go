package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/arthur-debert/datename/pkg/filesystem"
	"github.com/arthur-debert/datename/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing. The raw afero
// filesystem is returned too so tests can arrange and inspect state.
func NewTestFS() (types.FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return filesystem.NewAferoFS(mem), mem
}

// WriteFile creates path on mem, with parents, and sets its mtime.
func WriteFile(t *testing.T, mem afero.Fs, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, mem.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(mem, path, []byte(filepath.Base(path)), 0644))
	require.NoError(t, mem.Chtimes(path, mtime, mtime))
}

// WriteOSFile creates path on the real filesystem, with parents, and sets
// its mtime.
func WriteOSFile(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(filepath.Base(path)), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

// Names lists the entry names of dir on mem, sorted. A missing directory
// yields nil.
func Names(t *testing.T, mem afero.Fs, dir string) []string {
	t.Helper()
	infos, err := afero.ReadDir(mem, dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names
}

// OSNames is Names for the real filesystem.
func OSNames(t *testing.T, dir string) []string {
	t.Helper()
	return Names(t, afero.NewOsFs(), dir)
}

// Exists reports whether path exists on mem.
func Exists(t *testing.T, mem afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(mem, path)
	require.NoError(t, err)
	return ok
}
