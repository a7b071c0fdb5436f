// Package version reports how the issue-insights binary was built.
//
// Version, BuildDate and GitCommit are stamped at link time, e.g.
//
//	go build -ldflags "-X github.com/cicd-ai-toolkit/issue-insights/pkg/version.Version=v1.0.0"
package version

import "runtime"

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
	GoVersion string
}

// Get returns the stamped build information and the Go runtime version.
func Get() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
	}
}

// Short is the one-line form printed by --version.
func (b BuildInfo) Short() string {
	if b.Version == "dev" {
		return "issue-insights development version"
	}
	return "issue-insights " + b.Version
}
