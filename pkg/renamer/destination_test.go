package renamer

import (
	"errors"
	"io/fs"
	"testing"

	dnerrors "github.com/arthur-debert/datename/pkg/errors"
	"github.com/arthur-debert/datename/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationPath(t *testing.T) {
	assert.Equal(t, "./new", DestinationPath("."))
	assert.Equal(t, "/photos/new", DestinationPath("/photos/"))
	assert.Equal(t, "rel/dir/new", DestinationPath("rel/dir"))
	assert.Equal(t, "../pics/new", DestinationPath("../pics"))
}

func TestJoinPath_KeepsPrefix(t *testing.T) {
	tests := []struct {
		dir, name, want string
	}{
		{".", "photo.jpg", "./photo.jpg"},
		{"./new", "2024-07-01 10.00.00.jpg", "./new/2024-07-01 10.00.00.jpg"},
		{"/photos/", "a.jpg", "/photos/a.jpg"},
		{"a/../b", "c.jpg", "a/../b/c.jpg"},
		{"", "c.jpg", "c.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.dir+"+"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinPath(tt.dir, tt.name))
		})
	}
}

func TestEnsureDestination_CreatesWhenAbsent(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	require.NoError(t, mem.MkdirAll("/src", 0755))

	announced := 0
	created, err := EnsureDestination(fsys, "/src/new", false, func() error {
		announced++
		return nil
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, announced)
	assert.True(t, testutil.Exists(t, mem, "/src/new"))
}

func TestEnsureDestination_CreatesMissingParents(t *testing.T) {
	fsys, mem := testutil.NewTestFS()

	created, err := EnsureDestination(fsys, "/a/b/c/new", false, nil)

	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, testutil.Exists(t, mem, "/a/b/c/new"))
}

func TestEnsureDestination_Idempotent(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	require.NoError(t, mem.MkdirAll("/src/new", 0755))

	created, err := EnsureDestination(fsys, "/src/new", false, func() error {
		t.Fatal("must not announce an existing destination")
		return nil
	})

	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureDestination_SimulateNeverCreates(t *testing.T) {
	fsys, mem := testutil.NewTestFS()
	require.NoError(t, mem.MkdirAll("/src", 0755))

	created, err := EnsureDestination(fsys, "/src/new", true, func() error {
		t.Fatal("simulated run must not announce creation")
		return nil
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, testutil.Exists(t, mem, "/src/new"))
}

func TestEnsureDestination_MkdirFailure(t *testing.T) {
	base, _ := testutil.NewTestFS()
	fsys := &faultyFS{FS: base, mkdirErr: fs.ErrPermission}

	_, err := EnsureDestination(fsys, "/src/new", false, nil)

	require.Error(t, err)
	assert.True(t, dnerrors.IsErrorCode(err, dnerrors.ErrDirCreate))
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestEnsureDestination_AnnounceFailureStops(t *testing.T) {
	fsys, mem := testutil.NewTestFS()

	_, err := EnsureDestination(fsys, "/src/new", false, func() error {
		return errors.New("stdout closed")
	})

	require.Error(t, err)
	assert.False(t, testutil.Exists(t, mem, "/src/new"))
}
