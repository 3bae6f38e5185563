package version

var (
	// Version is the current application version.
	// It should be populated by the build system (ldflags).
	Version = "dev"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// String formats the build metadata for log fields.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
