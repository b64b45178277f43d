// Package types holds the data shapes shared between datename's packages:
// the filesystem seam, the directory entries observed during a scan and the
// rename plans derived from them.
package types
