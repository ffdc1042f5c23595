// Package util provides small helpers shared by the x/ packages
package util

import (
	"runtime/debug"
)

// Build describes the running binary
type Build struct {
	Version  string
	Revision string
	Dirty    bool
}

// ReadBuild collects version and vcs settings embedded by the go toolchain.
func ReadBuild() Build {
	build := Build{Version: "unknown", Revision: "unknown"}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return build
	}
	if info.Main.Version != "" {
		build.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			build.Revision = setting.Value
		case "vcs.modified":
			build.Dirty = setting.Value == "true"
		}
	}
	return build
}

// ShortRevision is the revision cut to 7 characters
func (b Build) ShortRevision() string {
	if len(b.Revision) > 7 {
		return b.Revision[:7]
	}
	return b.Revision
}

func (b Build) String() string {
	s := b.Version + "-" + b.ShortRevision()
	if b.Dirty {
		s += "-dirty"
	}
	return s
}
