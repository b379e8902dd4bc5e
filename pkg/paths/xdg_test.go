package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	t.Run("portable home wins", func(t *testing.T) {
		t.Setenv("SESHCONNECT_HOME", "/portable")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		assert.Equal(t, filepath.Join("/portable", "config"), ConfigDir())
		assert.Equal(t, filepath.Join("/portable", "state"), StateDir())
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv("SESHCONNECT_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		assert.Equal(t, filepath.Join("/xdg", "seshconnect"), ConfigDir())
		assert.Equal(t, filepath.Join("/xdg", "seshconnect", "config.yml"), PreferencesFile())
	})

	t.Run("home fallback", func(t *testing.T) {
		t.Setenv("SESHCONNECT_HOME", "")
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/tester")
		assert.Equal(t, filepath.Join("/home/tester", ".config", "seshconnect"), ConfigDir())
	})
}

func TestSeshConfigFile(t *testing.T) {
	// sesh.toml is never relocated by the portable root
	t.Setenv("SESHCONNECT_HOME", "/portable")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "sesh", "sesh.toml"), SeshConfigFile())
}

func TestPreferencesFileOverride(t *testing.T) {
	t.Setenv("SESHCONNECT_CONFIG", "/tmp/custom.yml")
	assert.Equal(t, "/tmp/custom.yml", PreferencesFile())
}

func TestLogDir(t *testing.T) {
	t.Setenv("SESHCONNECT_HOME", "")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/state", "seshconnect", "logs"), LogDir())
}
