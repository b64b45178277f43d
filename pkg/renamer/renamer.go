package renamer

import (
	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/arthur-debert/datename/pkg/logging"
	"github.com/arthur-debert/datename/pkg/types"
	"github.com/rs/zerolog"
)

// Options are the inputs of one run.
type Options struct {
	Directory string
	Simulate  bool
}

// Reporter receives the human-readable report of a run.
type Reporter interface {
	Simulating() error
	CreatingDestination() error
	Renaming(plan types.RenamePlan) error
}

// Renamer applies timestamp names to the files of a directory.
type Renamer struct {
	fsys     types.FS
	reporter Reporter
	logger   zerolog.Logger
}

// New creates a Renamer working on fsys and reporting to reporter.
func New(fsys types.FS, reporter Reporter) *Renamer {
	return &Renamer{
		fsys:     fsys,
		reporter: reporter,
		logger:   logging.GetLogger("renamer"),
	}
}

// Run performs one pass over opts.Directory. Every eligible file is
// reported; unless simulating it is then moved into the destination. The
// first error aborts the run.
func (r *Renamer) Run(opts Options) (types.RunSummary, error) {
	done := logging.LogOperationStart(r.logger, "run")
	defer done()

	summary := types.RunSummary{Simulated: opts.Simulate}

	if opts.Simulate {
		if err := r.reporter.Simulating(); err != nil {
			return summary, err
		}
	}

	dest := DestinationPath(opts.Directory)
	created, err := EnsureDestination(r.fsys, dest, opts.Simulate, r.reporter.CreatingDestination)
	if err != nil {
		return summary, err
	}
	summary.CreatedDestination = created

	scanner, err := NewScanner(r.fsys, opts.Directory)
	if err != nil {
		return summary, err
	}
	defer func() { _ = scanner.Close() }()

	resolver := NewCollisionResolver(r.fsys)
	for scanner.Scan() {
		plan, err := r.Plan(scanner.Entry(), dest, resolver)
		if err != nil {
			return summary, err
		}
		if err := r.apply(plan, opts.Simulate); err != nil {
			return summary, err
		}
		summary.Renamed++
	}
	summary.Skipped = scanner.Skipped()
	if err := scanner.Err(); err != nil {
		return summary, err
	}

	r.logger.Info().
		Str("directory", opts.Directory).
		Bool("simulate", summary.Simulated).
		Bool("createdDestination", summary.CreatedDestination).
		Int("renamed", summary.Renamed).
		Int("skipped", summary.Skipped).
		Msg("Run completed")
	return summary, nil
}

// Plan chooses the destination path for entry.
func (r *Renamer) Plan(entry types.DirectoryEntry, dest string, resolver *CollisionResolver) (types.RenamePlan, error) {
	_, ext := SplitExt(entry.Path)
	newPath, err := resolver.Resolve(dest, FormatTimestamp(entry.ModTime), ext)
	if err != nil {
		return types.RenamePlan{}, err
	}

	plan := types.RenamePlan{OriginalPath: entry.Path, NewPath: newPath}
	r.logger.Debug().
		Str("from", plan.OriginalPath).
		Str("to", plan.NewPath).
		Time("modTime", entry.ModTime).
		Msg("Planned rename")
	return plan, nil
}

func (r *Renamer) apply(plan types.RenamePlan, simulate bool) error {
	if err := r.reporter.Renaming(plan); err != nil {
		return err
	}
	if simulate {
		return nil
	}
	if err := r.fsys.Rename(plan.OriginalPath, plan.NewPath); err != nil {
		return errors.Wrapf(err, errors.ErrRename, "cannot rename %s to %s", plan.OriginalPath, plan.NewPath).
			WithDetail("from", plan.OriginalPath).
			WithDetail("to", plan.NewPath)
	}
	return nil
}
