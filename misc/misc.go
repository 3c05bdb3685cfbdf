// Package misc provides build information helpers shared by all binaries.
package misc

import "runtime/debug"

const appName = "figc"

func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded by the toolchain.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision recorded by the toolchain.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
