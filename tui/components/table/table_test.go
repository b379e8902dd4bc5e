package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleTable(t *testing.T) {
	out := SimpleTable([]string{"NAME", "SOURCE"}, [][]string{
		{"dotfiles", "tmux"},
		{"~/code/app", "zoxide"},
	})

	assert.Contains(t, out, "NAME")
	assert.True(t, strings.Index(out, "NAME") < strings.Index(out, "dotfiles"))
	assert.True(t, strings.Index(out, "dotfiles") < strings.Index(out, "zoxide"))
	assert.NotContains(t, out, "│")
}
