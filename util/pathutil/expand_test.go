package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SESH_DIR", "/opt/sesh")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde alone", "~", home},
		{"tilde prefix", "~/.config/sesh/sesh.toml", filepath.Join(home, ".config", "sesh", "sesh.toml")},
		{"tilde user form untouched", "~other/sesh.toml", "~other/sesh.toml"},
		{"env var", "$SESH_DIR/sesh.toml", "/opt/sesh/sesh.toml"},
		{"braced env var", "${SESH_DIR}/sesh.toml", "/opt/sesh/sesh.toml"},
		{"absolute", "/etc/sesh//sesh.toml", "/etc/sesh/sesh.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.in))
		})
	}
}
