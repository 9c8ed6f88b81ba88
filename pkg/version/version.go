// Package version records build metadata stamped at link time via
// -ldflags "-X".
package version

import "fmt"

var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the Git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String formats the full version line printed by the version command.
func String() string {
	return fmt.Sprintf("depscan %s (commit %s, built %s)", Version, Commit, Date)
}
