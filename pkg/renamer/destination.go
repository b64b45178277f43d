package renamer

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/arthur-debert/datename/pkg/types"
)

// DestinationDirName is the subdirectory of the source directory that
// receives renamed files.
const DestinationDirName = "new"

// DestinationPath returns the destination directory for sourceDir.
func DestinationPath(sourceDir string) string {
	return joinPath(sourceDir, DestinationDirName)
}

// joinPath appends name to dir without cleaning dir, so reports show the
// directory as the user typed it ("./photo.jpg", not "photo.jpg").
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// EnsureDestination makes sure dest exists. When it is absent and simulate
// is false, onCreate is called and the directory is created with any
// missing parents. Simulated runs never touch the filesystem. The returned
// bool reports whether the directory was created.
func EnsureDestination(fsys types.FS, dest string, simulate bool, onCreate func() error) (bool, error) {
	if simulate {
		return false, nil
	}

	exists, err := pathExists(fsys, dest)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if onCreate != nil {
		if err := onCreate(); err != nil {
			return false, err
		}
	}
	if err := fsys.MkdirAll(dest, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create destination %s", dest).
			WithDetail("path", dest)
	}
	return true, nil
}

// pathExists reports whether anything, including a dangling symlink, is
// present at path.
func pathExists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Lstat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).
		WithDetail("path", path)
}
