package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/bucketly/bucketly-backend/internal/app.Version=1.0.0"
// When Commit or BuildTime are left unset, BuildVersion fills them from the
// VCS stamp the go tool embeds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported by /health and the
// startup log.
func BuildVersion() string {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	return formatVersion(Version, Commit, BuildTime, settings)
}

func formatVersion(version, commit, built string, settings []debug.BuildSetting) string {
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && s.Value != "" {
				commit = s.Value[:min(len(s.Value), 12)]
			}
		case "vcs.time":
			if built == "unknown" && s.Value != "" {
				built = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
