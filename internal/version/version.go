package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the version string set by ldflags.
	Version = "dev"

	// Commit is the git commit hash set by ldflags.
	Commit = "unknown"

	// Date is the build date set by ldflags.
	Date = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("ytfront %s (%s, %s)", Version, Commit, Date)
}

// Info returns the multi-line build report printed by --version.
func Info() string {
	return fmt.Sprintf(`ytfront - video catalog browser for the terminal
Version:  %s
Commit:   %s
Built:    %s
Runtime:  %s %s/%s`, Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
