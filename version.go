package id3meta

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the id3meta library.
const Version = "0.2.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string // VCS revision embedded by the go command, or "unknown"
	BuildTime string // VCS commit time, or "unknown"
	GoVersion string
}

// GetVersionInfo returns version information for the running binary.
//
// GitCommit and BuildTime come from the VCS stamp the go command embeds
// when building from a checkout.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: "unknown",
		BuildTime: "unknown",
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		}
	}
	return info
}
