package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/sdvxrgb/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/sdvxrgb/internal/version.Commit=abc123"
//
// Otherwise they come from the VCS stamp in the build info, or fall back to
// "dev" with a timestamp.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		populateFromBuildInfo()
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func populateFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; Commit == "" && rev != "" {
		Commit = shortRevision(rev, settings["vcs.modified"] == "true")
	}

	if Version == "" {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		} else if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

func shortRevision(rev string, dirty bool) string {
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}

// Info is the version report printed by the version command.
type Info struct {
	Version   string `yaml:"version" json:"version"`
	Commit    string `yaml:"commit" json:"commit"`
	GoVersion string `yaml:"go_version" json:"go_version"`
	Platform  string `yaml:"platform" json:"platform"`
}

// Get returns the current build's version report.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
