// Package version reports the build that is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags, e.g.
// -X github.com/example/splitlog/internal/version.Version=v0.3.0
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = "unknown"
)

// String returns "splitlog <version> (commit: <short hash>, built: <time>)".
func String() string {
	return fmt.Sprintf("splitlog %s (commit: %s, built: %s)", Version, short(revision()), BuildTime)
}

// revision prefers the ldflags commit and falls back to the VCS stamp the
// Go toolchain embeds in binaries built from a checkout.
func revision() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}

func short(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
