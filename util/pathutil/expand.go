// Package pathutil expands user-supplied paths from preferences.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand expands a leading ~ and $VAR or ${VAR} references in path. The
// result is cleaned but not made absolute; an unresolvable home directory
// leaves the ~ in place.
func Expand(path string) string {
	if path == "" {
		return ""
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return filepath.Clean(os.ExpandEnv(path))
}
