package types

import "time"

// DirectoryEntry is a snapshot of one top-level entry of the source
// directory, taken when the scanner reached it.
type DirectoryEntry struct {
	Name    string
	Path    string
	IsFile  bool
	ModTime time.Time
}

// RenamePlan pairs a source file with the destination path chosen for it.
type RenamePlan struct {
	OriginalPath string
	NewPath      string
}

// RunSummary describes what a run did.
type RunSummary struct {
	Simulated bool
	// CreatedDestination is true when the run created the destination directory.
	CreatedDestination bool
	// Renamed counts planned renames (performed ones unless Simulated).
	Renamed int
	// Skipped counts entries that were not eligible.
	Skipped int
}
