package environ

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFrom(t *testing.T) {
	ambient := []string{"HOME=/home/me", "PATH=/usr/bin:/bin", "TERM=xterm"}

	t.Run("override replaces PATH only", func(t *testing.T) {
		env := ResolveFrom(ambient, "/opt/homebrew/bin:/usr/bin")

		assert.True(t, env.Overridden())
		assert.Equal(t, "/opt/homebrew/bin:/usr/bin", env.SearchPath())
		assert.Equal(t, "/opt/homebrew/bin:/usr/bin", env.Get("PATH"))
		assert.Equal(t, "/home/me", env.Get("HOME"))
		assert.Equal(t, "xterm", env.Get("TERM"))

		count := 0
		for _, kv := range env.Vars() {
			if len(kv) >= 5 && kv[:5] == "PATH=" {
				count++
			}
		}
		assert.Equal(t, 1, count, "PATH must appear exactly once")
	})

	t.Run("empty override keeps ambient PATH", func(t *testing.T) {
		env := ResolveFrom(ambient, "")
		assert.False(t, env.Overridden())
		assert.Equal(t, "/usr/bin:/bin", env.SearchPath())
		assert.Equal(t, ambient, env.Vars())
	})

	t.Run("override without ambient PATH", func(t *testing.T) {
		env := ResolveFrom([]string{"HOME=/home/me"}, "/bin")
		assert.Equal(t, "/bin", env.Get("PATH"))
	})
}

func TestEnvironmentIsImmutable(t *testing.T) {
	env := ResolveFrom([]string{"PATH=/bin"}, "/usr/local/bin")

	vars := env.Vars()
	vars[0] = "PATH=/tampered"

	assert.Equal(t, "/usr/local/bin", env.Get("PATH"))
	assert.NotEqual(t, "PATH=/tampered", env.Vars()[0])
}

func TestResolveUsesProcessEnvironment(t *testing.T) {
	t.Setenv("SESHCONNECT_ENV_MARKER", "present")
	env := Resolve("/custom/bin")
	assert.Equal(t, "present", env.Get("SESHCONNECT_ENV_MARKER"))
	assert.Equal(t, "/custom/bin", env.Get("PATH"))
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "hyprctl")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755))

	env := ResolveFrom(nil, dir)
	got, err := env.LookPath("hyprctl")
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	_, err = env.LookPath("wezterm")
	assert.Error(t, err)
}
