// Package environ builds the process environment handed to every external
// command: the ambient environment with the search path taken from
// preferences.
package environ

import (
	"os"
	"strings"

	"github.com/grovetools/seshconnect/command"
)

const searchPathKey = "PATH"

// Environment is an immutable snapshot of process environment variables.
// Build one per command-invocation context and pass it to each client.
type Environment struct {
	vars       []string
	searchPath string
	overridden bool
}

// Resolve snapshots the current process environment and applies the
// configured search path. An empty searchPath leaves the ambient PATH as is.
func Resolve(searchPath string) Environment {
	return ResolveFrom(os.Environ(), searchPath)
}

// ResolveFrom is Resolve over an explicit ambient environment.
func ResolveFrom(ambient []string, searchPath string) Environment {
	vars := make([]string, 0, len(ambient)+1)
	prefix := searchPathKey + "="
	ambientPath := ""
	for _, kv := range ambient {
		if strings.HasPrefix(kv, prefix) {
			ambientPath = kv[len(prefix):]
			if searchPath != "" {
				continue
			}
		}
		vars = append(vars, kv)
	}

	if searchPath == "" {
		return Environment{vars: vars, searchPath: ambientPath}
	}

	vars = append(vars, prefix+searchPath)
	return Environment{vars: vars, searchPath: searchPath, overridden: true}
}

// Vars returns a copy of the environment in KEY=VALUE form, suitable for
// exec.Cmd.Env.
func (e Environment) Vars() []string {
	if e.vars == nil {
		return nil
	}
	out := make([]string, len(e.vars))
	copy(out, e.vars)
	return out
}

// Get returns the value of key, or "" when unset.
func (e Environment) Get(key string) string {
	prefix := key + "="
	value := ""
	for _, kv := range e.vars {
		if strings.HasPrefix(kv, prefix) {
			value = kv[len(prefix):]
		}
	}
	return value
}

// SearchPath returns the effective PATH.
func (e Environment) SearchPath() string {
	return e.searchPath
}

// Overridden reports whether the search path came from preferences.
func (e Environment) Overridden() bool {
	return e.overridden
}

// LookPath resolves a program name against this environment's PATH.
func (e Environment) LookPath(name string) (string, error) {
	return command.LookPath(name, e.Vars())
}
