// Package version carries the build metadata stamped into release
// binaries.
package version

import "bsp-entity-generator/internal/common"

// Overridable at build time:
//
//	go build -ldflags "-X bsp-entity-generator/internal/version.Version=1.0.0 \
//	  -X bsp-entity-generator/internal/version.Commit=abc1234"
var (
	// Version is the semantic version of the tool.
	Version = "0.1.0"

	// Commit is the git commit hash (set at build time).
	Commit = common.UnknownStr

	// BuildDate is the build timestamp (set at build time).
	BuildDate = common.UnknownStr
)

// Info returns the short version string shown in logs.
func Info() string {
	if Commit != common.UnknownStr && len(Commit) > 7 {
		return Version + " (" + Commit[:7] + ")"
	}

	return Version
}

// Full returns the multi-line version report for the version command.
func Full() string {
	return "bsp-entity-generator " + Version + "\n" +
		"Commit: " + Commit + "\n" +
		"Built: " + BuildDate
}
