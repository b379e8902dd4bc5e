package sesh

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/seshconnect/command"
	"github.com/grovetools/seshconnect/command/mocks"
	"github.com/grovetools/seshconnect/errors"
	"github.com/grovetools/seshconnect/pkg/environ"
)

func newTestClient(runner *mocks.MockRunner) *Client {
	env := environ.ResolveFrom([]string{"HOME=/home/u", "PATH=/usr/bin"}, "/opt/sesh/bin:/usr/bin")
	return NewClient(runner, env, "sesh", nil)
}

func TestClient_List(t *testing.T) {
	runner := &mocks.MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
			return command.Result{Stdout: listOutput}, nil
		},
	}
	client := newTestClient(runner)

	sessions, err := client.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions, 5)

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "sesh list --json", calls[0].Line())
	assert.Contains(t, calls[0].Env, "PATH=/opt/sesh/bin:/usr/bin")
	assert.NotContains(t, calls[0].Env, "PATH=/usr/bin")
}

func TestClient_ListNullOutput(t *testing.T) {
	runner := &mocks.MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
			return command.Result{Stdout: "null\n"}, nil
		},
	}

	sessions, err := newTestClient(runner).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestClient_ListFailures(t *testing.T) {
	tests := []struct {
		name   string
		result command.Result
		err    error
	}{
		{"non-zero exit", command.Result{ExitCode: 1}, fmt.Errorf("exit status 1")},
		{"stderr output", command.Result{Stdout: "[]", Stderr: "warning: deprecated"}, nil},
		{"unparseable output", command.Result{Stdout: "NAME  PATH"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mocks.MockRunner{
				RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
					return tt.result, tt.err
				},
			}

			sessions, err := newTestClient(runner).List(context.Background())
			assert.Nil(t, sessions)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeListFailed, errors.GetCode(err))
			assert.Equal(t, "Please upgrade to the latest version of the sesh CLI", errors.UserMessage(err))
		})
	}
}

func TestClient_Connect(t *testing.T) {
	runner := &mocks.MockRunner{}
	require.NoError(t, newTestClient(runner).Connect(context.Background(), "my project"))

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"connect", "--switch", "--", "my project"}, calls[0].Args)
}

func TestClient_ConnectFailure(t *testing.T) {
	runner := &mocks.MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
			return command.Result{Stderr: "no server running on /tmp/tmux-1000/default\n"}, nil
		},
	}

	err := newTestClient(runner).Connect(context.Background(), "foo")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConnectFailed, errors.GetCode(err))
	assert.Contains(t, err.Error(), "no server running")
}

func TestClient_Close(t *testing.T) {
	runner := &mocks.MockRunner{}
	require.NoError(t, newTestClient(runner).Close(context.Background(), "bar"))
	assert.Equal(t, 1, runner.CountPrefix("sesh kill -- bar"))
}

func TestClient_CloseFailure(t *testing.T) {
	runner := &mocks.MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
			return command.Result{ExitCode: 1}, fmt.Errorf("exit status 1")
		},
	}

	err := newTestClient(runner).Close(context.Background(), "bar")
	assert.Equal(t, errors.ErrCodeCloseFailed, errors.GetCode(err))
}

func TestClient_FlagLikeNamesFollowSeparator(t *testing.T) {
	runner := &mocks.MockRunner{}
	client := newTestClient(runner)

	require.NoError(t, client.Connect(context.Background(), "--help"))
	require.NoError(t, client.Close(context.Background(), "-scratch"))

	calls := runner.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"connect", "--switch", "--", "--help"}, calls[0].Args)
	assert.Equal(t, []string{"kill", "--", "-scratch"}, calls[1].Args)
}

func TestClient_RejectsInvalidNames(t *testing.T) {
	runner := &mocks.MockRunner{}
	client := newTestClient(runner)

	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(client.Connect(context.Background(), "a\nb")))
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(client.Close(context.Background(), "")))
	assert.Empty(t, runner.Calls())
}
