package cli

import "fmt"

var (
	// Version information - typically set via ldflags at build time
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// versionTemplate is printed for --version.
func versionTemplate() string {
	return fmt.Sprintf("minigrep %s\nGit commit: %s\nBuild date: %s\n", Version, GitCommit, BuildDate)
}
