// FILE: loglens/src/internal/version/version.go
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is set at compile time via -ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Returns a formatted version string
func String() string {
	return fmt.Sprintf("loglens %s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}

// Returns the version string with the toolchain used for the build
func Full() string {
	return fmt.Sprintf("%s %s/%s %s", String(), runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// Returns just the version tag
func Short() string {
	return Version
}
