// Package renamer moves the files of a directory into its "new"
// subdirectory under names derived from their modification time.
//
// A run is a single forward pass:
//
//	Start -> ConfigParsed -> DestinationEnsured -> Scanning -> Done
//
// The destination is prepared first (EnsureDestination), then a Scanner
// walks the top level of the source directory once. Every eligible file
// gets a name from FormatTimestamp plus its original extension; a
// CollisionResolver appends -1, -2, ... until the name is free in the
// destination. Each plan is reported, then applied unless simulating. The
// first filesystem error ends the run; renames already done are kept.
package renamer
