package config

import (
	"os"
	"path/filepath"
)

const (
	// FileName is the configuration file name the hook looks for.
	FileName = "sdvxrgb.ini"

	// PathEnvVar overrides the configuration file location.
	PathEnvVar = "SDVXRGB_CONFIG"
)

// DefaultPath returns the configuration file path.
// Resolution order:
//   - $SDVXRGB_CONFIG if set
//   - sdvxrgb.ini next to the running executable (the hook DLL lives beside
//     the game, and so does its config)
//   - sdvxrgb.ini in the working directory
func DefaultPath() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}

	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}
