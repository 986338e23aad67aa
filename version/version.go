// Package version provides build version information for weave.
package version

import "runtime/debug"

// Version is set at build time using -ldflags.
var Version = "dev"

// Short returns the version, suffixed with the VCS revision when the
// binary carries one.
func Short() string {
	if commit := vcsRevision(); commit != "" {
		return Version + "-" + commit
	}
	return Version
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			if len(setting.Value) > 7 {
				return setting.Value[:7]
			}
			return setting.Value
		}
	}
	return ""
}
