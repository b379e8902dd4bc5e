package tmux

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/seshconnect/command"
	"github.com/grovetools/seshconnect/command/mocks"
	"github.com/grovetools/seshconnect/pkg/environ"
)

func TestIsRunning(t *testing.T) {
	env := environ.ResolveFrom([]string{"PATH=/usr/bin"}, "")

	tests := []struct {
		name   string
		result command.Result
		err    error
		want   bool
	}{
		{"server up", command.Result{Stdout: "main: 2 windows (created Mon)\n"}, nil, true},
		{"no server", command.Result{Stderr: "no server running on /tmp/tmux-1000/default\n", ExitCode: 1}, fmt.Errorf("exit status 1"), false},
		{"stderr only", command.Result{Stderr: "error connecting to /tmp/tmux-1000/default\n"}, nil, false},
		{"binary missing", command.Result{}, fmt.Errorf("exec: \"tmux\": executable file not found in $PATH"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mocks.MockRunner{
				RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
					return tt.result, tt.err
				},
			}
			client := NewClient(runner, env, "tmux", nil)
			assert.Equal(t, tt.want, client.IsRunning(context.Background()))

			calls := runner.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, "tmux ls", calls[0].Line())
		})
	}
}

func TestIsRunning_Socket(t *testing.T) {
	runner := &mocks.MockRunner{}
	client := NewClientWithSocket(runner, environ.ResolveFrom(nil, ""), "tmux", "work", nil)

	assert.True(t, client.IsRunning(context.Background()))
	assert.Equal(t, "work", client.Socket())
	assert.Equal(t, []string{"-L", "work", "ls"}, runner.Calls()[0].Args)
}
