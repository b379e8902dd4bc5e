package command

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755))
	return path
}

func TestLookPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	stub := writeStub(t, second, "sesh")
	// Not executable, must be skipped
	require.NoError(t, os.WriteFile(filepath.Join(first, "sesh"), []byte("data"), 0644))

	t.Run("searches env PATH in order", func(t *testing.T) {
		got, err := LookPath("sesh", []string{"HOME=/x", "PATH=" + first + string(os.PathListSeparator) + second})
		require.NoError(t, err)
		assert.Equal(t, stub, got)
	})

	t.Run("last PATH entry wins", func(t *testing.T) {
		got, err := LookPath("sesh", []string{"PATH=/nowhere", "PATH=" + second})
		require.NoError(t, err)
		assert.Equal(t, stub, got)
	})

	t.Run("empty PATH finds nothing", func(t *testing.T) {
		_, err := LookPath("sesh", []string{"PATH="})
		require.Error(t, err)
		assert.True(t, errors.Is(err, exec.ErrNotFound))
	})

	t.Run("nil env defers to exec", func(t *testing.T) {
		got, err := LookPath("sesh", nil)
		require.NoError(t, err)
		assert.Equal(t, "sesh", got)
	})

	t.Run("explicit paths are untouched", func(t *testing.T) {
		got, err := LookPath("/usr/bin/env", []string{"PATH="})
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/env", got)
	})

	t.Run("env without PATH defers to exec", func(t *testing.T) {
		got, err := LookPath("sesh", []string{"HOME=/x"})
		require.NoError(t, err)
		assert.Equal(t, "sesh", got)
	})
}
