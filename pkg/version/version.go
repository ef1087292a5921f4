// Package version exposes build metadata stamped into the csja binary.
package version

import "fmt"

// Build-time variables injected via -ldflags:
//
//	-X github.com/csja-dev/csja/pkg/version.Version=v0.4.1
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the build metadata of the running binary.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// IsDev reports whether the binary was built without release stamping.
func IsDev() bool {
	return Version == "dev"
}

// String formats the metadata as "v1.2.3 (commit: abc, built: 2020-02-01)".
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}
