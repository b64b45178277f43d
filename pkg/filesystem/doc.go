// Package filesystem provides implementations of types.FS: the real OS
// filesystem used by the binary and an afero-backed one used by tests.
package filesystem
