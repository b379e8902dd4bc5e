package sesh

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listOutput = `[
  {"Src":"tmux","Name":"dotfiles","Path":"/home/u/dotfiles","Score":0,"Attached":1,"Windows":3},
  {"Src":"tmux","Name":"scratch","Path":"/tmp","Score":0,"Attached":0,"Windows":1},
  {"Src":"tmuxinator","Name":"api","Path":"","Score":4,"Attached":0,"Windows":0},
  {"Src":"config","Name":"notes","Path":"/home/u/notes","Score":0,"Attached":2,"Windows":9},
  {"Src":"zoxide","Name":"~/code/app","Path":"/home/u/code/app","Score":12.3456,"Attached":0,"Windows":0}
]`

func TestDecode(t *testing.T) {
	sessions, err := Decode([]byte(listOutput), nil)
	require.NoError(t, err)
	require.Len(t, sessions, 5)

	assert.Equal(t, LiveSession{Common: Common{Name: "dotfiles", Path: "/home/u/dotfiles"}, Attached: 1, Windows: 3}, sessions[0])
	assert.Equal(t, ProjectSession{Common: Common{Name: "api"}, Score: 4}, sessions[2])
	assert.Equal(t, ConfigSession{Common: Common{Name: "notes", Path: "/home/u/notes"}}, sessions[3])
	assert.Equal(t, DirectorySession{Common: Common{Name: "~/code/app", Path: "/home/u/code/app"}, Score: 12.3456}, sessions[4])

	assert.Equal(t, SourceLive, sessions[0].Source())
	assert.Equal(t, SourceProject, sessions[2].Source())
	assert.Equal(t, SourceConfig, sessions[3].Source())
	assert.Equal(t, SourceDirectory, sessions[4].Source())
}

func TestDecode_EmptyOutput(t *testing.T) {
	for _, input := range []string{"", "   \n", "null", "[]"} {
		t.Run(input, func(t *testing.T) {
			sessions, err := Decode([]byte(input), nil)
			require.NoError(t, err)
			assert.NotNil(t, sessions)
			assert.Empty(t, sessions)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("sesh: unknown flag --json"), nil)
	assert.Error(t, err)
}

func TestDecode_UnknownSourceSkipped(t *testing.T) {
	sessions, err := Decode([]byte(`[{"Src":"kitty","Name":"x"},{"Src":"config","Name":"y"}]`), nil)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "y", sessions[0].SessionName())
}

func TestAttachmentOnlyForLiveSessions(t *testing.T) {
	sessions, err := Decode([]byte(listOutput), nil)
	require.NoError(t, err)

	state, ok := AttachmentState(sessions[0])
	assert.True(t, ok)
	assert.Equal(t, "Attached", state)

	state, ok = AttachmentState(sessions[1])
	assert.True(t, ok)
	assert.Equal(t, "Detached", state)

	// The config record claims two attached clients and nine windows; neither
	// may surface because the source is not a live session.
	_, ok = AttachmentState(sessions[3])
	assert.False(t, ok)
	_, ok = WindowCount(sessions[3])
	assert.False(t, ok)
	assert.Equal(t, "", Accessory(sessions[3]))
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, ""},
		{4, "4"},
		{120, "120"},
		{12.3456, "12.35"},
		{0.5, "0.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScore(tt.score), "score %v", tt.score)
	}
}

func TestPresentation(t *testing.T) {
	sessions, err := Decode([]byte(listOutput), nil)
	require.NoError(t, err)

	tests := []struct {
		name      string
		session   Session
		icon      string
		label     string
		accessory string
	}{
		{"live", sessions[0], "⚡", "tmux", "3 windows"},
		{"single window", sessions[1], "⚡", "tmux", "1 window"},
		{"project", sessions[2], "📦", "tmuxinator", "4"},
		{"config", sessions[3], "⚙", "config", ""},
		{"directory", sessions[4], "📁", "zoxide", "12.35"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.icon, Icon(tt.session))
			assert.Equal(t, tt.label, Label(tt.session))
			assert.Equal(t, tt.accessory, Accessory(tt.session))
		})
	}
}

func TestViews_JSON(t *testing.T) {
	sessions, err := Decode([]byte(listOutput), nil)
	require.NoError(t, err)

	data, err := json.Marshal(Views(sessions[2:4]))
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"source":"project-template","name":"api","path":"","score":4},
		{"source":"static-config","name":"notes","path":"/home/u/notes"}
	]`, string(data))
}
