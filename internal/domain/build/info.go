// Package build describes the running binary.
package build

import (
	"fmt"
	"runtime"
)

// RepoURL is the project repository.
const RepoURL = "https://github.com/qualzed/qBrowser"

// Info holds build-time values injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// NewInfo fills GoVersion from the running toolchain.
func NewInfo(version, commit, buildDate string) Info {
	return Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
}

// String is the one-line form printed by `qb --version`.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}
