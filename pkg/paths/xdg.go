// Package paths provides XDG-compliant path resolution for seshconnect.
//
// Resolution order:
// 1. SESHCONNECT_HOME (portable root) → $SESHCONNECT_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/seshconnect
// 3. Platform defaults → ~/.config/seshconnect, ~/.local/state/seshconnect
package paths

import (
	"os"
	"path/filepath"
)

const appName = "seshconnect"

// configHome returns the user's base config directory. It ignores
// SESHCONNECT_HOME because other tools' files (sesh.toml) live there too.
func configHome() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// stateHome returns the base state home directory.
func stateHome() string {
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the seshconnect configuration directory.
func ConfigDir() string {
	if home := os.Getenv("SESHCONNECT_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	base := configHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// StateDir returns the seshconnect state directory.
// Used for logs.
func StateDir() string {
	if home := os.Getenv("SESHCONNECT_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	base := stateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// PreferencesFile returns the default preferences document path.
// SESHCONNECT_CONFIG wins when set.
func PreferencesFile() string {
	if p := os.Getenv("SESHCONNECT_CONFIG"); p != "" {
		return p
	}
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yml")
}

// SeshConfigFile returns the location of sesh's own sesh.toml.
func SeshConfigFile() string {
	base := configHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "sesh", "sesh.toml")
}

// LogDir returns the directory for log files.
func LogDir() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "logs")
}
