// Package version exposes build provenance injected at link time.
package version

import "fmt"

// Commit and BuildTime are overridden via -ldflags at build time.
// A plain `go build` leaves them at "unknown".
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String renders the human-readable version line. Versioning is
// commit-hash based, no semver.
func String() string {
	return fmt.Sprintf("solace-registry dev (commit: %s, built: %s)", shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
