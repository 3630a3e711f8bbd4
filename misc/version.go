// Package misc provides build identification helpers shared across commands.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "bkc"

// GetAppName returns short program name used for logs, temporary files and
// generated artifacts.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() (info struct {
	version string
	hash    string
}) {
	info.version = "devel"
	info.hash = "unknown"

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if len(bi.Main.Version) > 0 && bi.Main.Version != "(devel)" {
		info.version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 8 {
			info.hash = s.Value[:8]
		}
	}
	return
})

// GetVersion returns module version recorded in build information.
func GetVersion() string {
	return buildInfo().version
}

// GetGitHash returns short VCS revision recorded in build information.
func GetGitHash() string {
	return buildInfo().hash
}
