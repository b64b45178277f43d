package renamer

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/arthur-debert/datename/pkg/types"
)

// TimestampLayout formats modification times as "YYYY-MM-DD HH.MM.SS".
// Files modified within the same second share a name and fall through to
// collision resolution.
const TimestampLayout = "2006-01-02 15.04.05"

// maxCollisionSuffix bounds the probe loop.
const maxCollisionSuffix = 1 << 20

// FormatTimestamp renders t in local time with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// SplitExt splits the final path component at its last dot. The extension
// keeps the dot; names without a dot have an empty extension.
func SplitExt(path string) (stem, ext string) {
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	return base[:len(base)-len(ext)], ext
}

// CandidateName returns the file name tried on probe n: the bare stamp for
// n == 0, stamp-n otherwise, followed by ext.
func CandidateName(stamp string, n int, ext string) string {
	if n == 0 {
		return stamp + ext
	}
	return stamp + "-" + strconv.Itoa(n) + ext
}

// CollisionResolver picks free destination paths for one run. Availability
// is checked against the live destination; paths handed out earlier in the
// run are also held back, so simulated runs, which move nothing, still
// produce the names a real run would.
type CollisionResolver struct {
	fsys    types.FS
	claimed map[string]struct{}
}

// NewCollisionResolver creates a resolver with no claimed paths.
func NewCollisionResolver(fsys types.FS) *CollisionResolver {
	return &CollisionResolver{
		fsys:    fsys,
		claimed: make(map[string]struct{}),
	}
}

// Resolve returns the first free path in dest for stamp and ext.
func (c *CollisionResolver) Resolve(dest, stamp, ext string) (string, error) {
	for n := 0; n <= maxCollisionSuffix; n++ {
		candidate := joinPath(dest, CandidateName(stamp, n, ext))
		if _, taken := c.claimed[candidate]; taken {
			continue
		}

		exists, err := pathExists(c.fsys, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			c.claimed[candidate] = struct{}{}
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrInternal, "no free name for %s%s in %s", stamp, ext, dest)
}
