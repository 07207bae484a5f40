package cmd

import (
	"runtime"
	"runtime/debug"
)

var (
	// Version is the application version, set via ldflags
	Version string
	// Revision is the git commit revision
	Revision = getRevision()
)

func versionString() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	return v + " (" + Revision + ", " + runtime.Version() + ")"
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false
	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}
	return rev
}
