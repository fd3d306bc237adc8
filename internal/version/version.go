package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/reskin/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/reskin/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/reskin/internal/version.Date={{.Date}}
)

// String renders the build information on one line per field
func String() string {
	return fmt.Sprintf("reskin version %s\nCommit: %s\nBuilt:  %s\n", Version, Commit, Date)
}
