package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/seshconnect/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Preferences)
		field   string
		wantErr bool
	}{
		{name: "defaults", mutate: func(p *Preferences) {}},
		{name: "absolute binary", mutate: func(p *Preferences) { p.Sesh.Binary = "/usr/local/bin/sesh" }},
		{name: "socket", mutate: func(p *Preferences) { p.Tmux.Socket = "work_2" }},
		{
			name:    "binary with shell metacharacters",
			mutate:  func(p *Preferences) { p.Terminal.Binary = "wezterm && reboot" },
			field:   "terminal.binary",
			wantErr: true,
		},
		{
			name:    "class starting with dot",
			mutate:  func(p *Preferences) { p.Terminal.Class = ".wezterm" },
			field:   "terminal.class",
			wantErr: true,
		},
		{
			name:    "socket with path",
			mutate:  func(p *Preferences) { p.Tmux.Socket = "../other" },
			field:   "tmux.socket",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)

			err := p.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			seshErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeConfigInvalid, seshErr.Code)
			assert.Equal(t, tt.field, seshErr.Details["field"])
		})
	}
}

func TestSchemaValidator(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(Default()))
	assert.NoError(t, v.Validate(map[string]interface{}{"logging": map[string]interface{}{"level": "debug"}}))

	err = v.Validate(map[string]interface{}{"tmux": map[string]interface{}{"socket": "has space"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/tmux/socket")

	err = v.Validate(map[string]interface{}{"terminal": "wezterm"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/terminal")
}
