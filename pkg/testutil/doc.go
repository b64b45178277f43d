// Package testutil provides fixtures for datename tests: an in-memory
// filesystem behind types.FS and helpers to create files with a chosen
// modification time on either it or the real filesystem.
package testutil
