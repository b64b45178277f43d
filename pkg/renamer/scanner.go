package renamer

import (
	stderrors "errors"
	"io"
	"io/fs"
	"strings"

	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/arthur-debert/datename/pkg/logging"
	"github.com/arthur-debert/datename/pkg/types"
	"github.com/rs/zerolog"
)

// HiddenPrefix marks names the scanner never returns.
const HiddenPrefix = "."

// scanBatchSize is how many directory entries are read per call.
const scanBatchSize = 64

// Scanner lazily walks the top level of a directory once, yielding only
// eligible entries: regular files (or symlinks to them) whose name does not
// start with HiddenPrefix. Use it like bufio.Scanner and always Close it.
type Scanner struct {
	fsys   types.FS
	dir    string
	handle types.DirHandle
	logger zerolog.Logger

	pending []fs.DirEntry
	eof     bool
	entry   types.DirectoryEntry
	err     error
	skipped int
}

// NewScanner opens dir for scanning.
func NewScanner(fsys types.FS, dir string) (*Scanner, error) {
	handle, err := fsys.OpenDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRead, "cannot scan directory %s", dir).
			WithDetail("path", dir)
	}
	return &Scanner{
		fsys:   fsys,
		dir:    dir,
		handle: handle,
		logger: logging.GetLogger("renamer.scanner"),
	}, nil
}

// Scan advances to the next eligible entry. It returns false at the end of
// the directory or on error; check Err afterwards.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.handle == nil {
		return false
	}
	for {
		if len(s.pending) == 0 {
			if s.eof {
				return false
			}
			if !s.fill() {
				return false
			}
			continue
		}

		d := s.pending[0]
		s.pending = s.pending[1:]

		entry, ok, err := s.inspect(d)
		if err != nil {
			s.err = err
			return false
		}
		if !ok {
			s.skipped++
			continue
		}
		s.entry = entry
		return true
	}
}

// fill reads the next batch; it reports whether scanning can go on.
func (s *Scanner) fill() bool {
	batch, err := s.handle.ReadDir(scanBatchSize)
	if err != nil && !stderrors.Is(err, io.EOF) {
		s.err = errors.Wrapf(err, errors.ErrDirRead, "cannot scan directory %s", s.dir).
			WithDetail("path", s.dir)
		return false
	}
	if stderrors.Is(err, io.EOF) || len(batch) == 0 {
		s.eof = true
	}
	s.pending = batch
	return true
}

// inspect turns a raw directory entry into a DirectoryEntry. ok is false
// for entries that are not eligible.
func (s *Scanner) inspect(d fs.DirEntry) (types.DirectoryEntry, bool, error) {
	name := d.Name()
	path := joinPath(s.dir, name)

	if strings.HasPrefix(name, HiddenPrefix) {
		s.logger.Trace().Str("path", path).Msg("Skipping hidden entry")
		return types.DirectoryEntry{}, false, nil
	}

	var (
		info fs.FileInfo
		err  error
	)
	switch typ := d.Type(); {
	case typ.IsRegular():
		info, err = d.Info()
	case typ&fs.ModeSymlink != 0:
		info, err = s.fsys.Stat(path)
	default:
		s.logger.Trace().Str("path", path).Str("type", typ.String()).Msg("Skipping non-file entry")
		return types.DirectoryEntry{}, false, nil
	}
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			// Vanished since the listing, or a dangling symlink.
			s.logger.Trace().Str("path", path).Msg("Skipping missing entry")
			return types.DirectoryEntry{}, false, nil
		}
		return types.DirectoryEntry{}, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).
			WithDetail("path", path)
	}
	if !info.Mode().IsRegular() {
		s.logger.Trace().Str("path", path).Msg("Skipping symlink to non-file")
		return types.DirectoryEntry{}, false, nil
	}

	return types.DirectoryEntry{
		Name:    name,
		Path:    path,
		IsFile:  true,
		ModTime: info.ModTime(),
	}, true, nil
}

// Entry returns the entry found by the last successful Scan.
func (s *Scanner) Entry() types.DirectoryEntry {
	return s.entry
}

// Err returns the first error met while scanning.
func (s *Scanner) Err() error {
	return s.err
}

// Skipped counts the ineligible entries seen so far.
func (s *Scanner) Skipped() int {
	return s.skipped
}

// Close releases the directory handle. It is safe to call more than once.
func (s *Scanner) Close() error {
	if s.handle == nil {
		return nil
	}
	err := s.handle.Close()
	s.handle = nil
	return err
}
