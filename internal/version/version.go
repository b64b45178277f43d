package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/datename/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/datename/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/datename/internal/version.Date={{.Date}}
)

// Info returns the one-line build description shown by `datename version`
// and embedded in the man page header.
func Info() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
