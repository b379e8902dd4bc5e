package command

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LookPath resolves name against the PATH found in env rather than the
// current process's PATH. A nil env, or a name containing a path
// separator, is returned as-is for exec to handle.
func LookPath(name string, env []string) (string, error) {
	if env == nil || strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}

	searchPath, ok := lookupEnv(env, "PATH")
	if !ok {
		return name, nil
	}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%q not found in PATH %q: %w", name, searchPath, exec.ErrNotFound)
}

// lookupEnv returns the last value of key in a KEY=VALUE list, matching
// how the child process will see it.
func lookupEnv(env []string, key string) (string, bool) {
	prefix := key + "="
	value, found := "", false
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			value, found = kv[len(prefix):], true
		}
	}
	return value, found
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0111 != 0
}
