package focus

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

var testOptions = Options{
	Dispatcher: "hyprctl",
	Class:      "me.mloeper.wezterm_tmux_main",
	Terminal:   "wezterm",
}

func newTestOrchestrator(runner *mocks.MockRunner) (*Orchestrator, *[]State) {
	o := NewOrchestrator(runner, environ.ResolveFrom([]string{"PATH=/bin"}, "/custom/bin"), testOptions, nil)
	var states []State
	o.OnTransition = func(from, to State) {
		states = append(states, to)
	}
	return o, &states
}

func TestActivate_DispatchSucceeds(t *testing.T) {
	runner := &mocks.MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
			return command.Result{Stdout: "ok\n"}, nil
		},
	}
	o, states := newTestOrchestrator(runner)

	require.NoError(t, o.Activate(context.Background()))

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "hyprctl dispatch focuswindow class:me.mloeper.wezterm_tmux_main", calls[0].Line())
	assert.Contains(t, calls[0].Env, "PATH=/custom/bin")
	assert.Empty(t, runner.Starts())
	assert.Equal(t, []State{StateDispatching, StateDone}, *states)
}

func TestActivate_FallsBackToLaunch(t *testing.T) {
	tests := []struct {
		name   string
		result command.Result
		err    error
	}{
		{"dispatch error", command.Result{ExitCode: 1}, fmt.Errorf("exit status 1")},
		{"dispatch stderr", command.Result{Stderr: "Couldn't connect to /tmp/hypr/.socket.sock"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mocks.MockRunner{
				RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
					return tt.result, tt.err
				},
			}
			o, states := newTestOrchestrator(runner)

			require.NoError(t, o.Activate(context.Background()))

			starts := runner.Starts()
			require.Len(t, starts, 1)
			assert.Equal(t, "wezterm", starts[0].Name)
			assert.Empty(t, starts[0].Args)
			assert.Equal(t, []State{StateDispatching, StateLaunching, StateDone}, *states)
		})
	}
}

func TestActivate_CancelledDispatchDoesNotLaunch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := &mocks.MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
			cancel()
			return command.Result{ExitCode: -1}, fmt.Errorf("signal: killed")
		},
	}
	o, states := newTestOrchestrator(runner)

	err := o.Activate(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeActivationFailed))
	assert.Empty(t, runner.Starts())
	assert.Equal(t, []State{StateDispatching, StateFailed}, *states)
}

func TestActivate_BothFail(t *testing.T) {
	runner := &mocks.MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (command.Result, error) {
			return command.Result{Stderr: "HYPRLAND_INSTANCE_SIGNATURE not set\n"}, nil
		},
		StartFunc: func(ctx context.Context, name string, args ...string) error {
			return fmt.Errorf("exec: \"wezterm\": executable file not found in $PATH")
		},
	}
	o, states := newTestOrchestrator(runner)

	err := o.Activate(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeActivationFailed, errors.GetCode(err))

	seshErr, ok := errors.As(err)
	require.True(t, ok)
	assert.EqualError(t, seshErr.Cause, "HYPRLAND_INSTANCE_SIGNATURE not set")
	assert.NotContains(t, err.Error(), "executable file not found")
	assert.Equal(t, []State{StateDispatching, StateLaunching, StateFailed}, *states)
}

func TestActivate_InvalidClass(t *testing.T) {
	runner := &mocks.MockRunner{}
	o := NewOrchestrator(runner, environ.ResolveFrom(nil, ""), Options{Dispatcher: "hyprctl", Class: "bad class;", Terminal: "wezterm"}, nil)

	err := o.Activate(context.Background())
	assert.Equal(t, errors.ErrCodeActivationFailed, errors.GetCode(err))
	assert.Empty(t, runner.Calls())
	assert.Empty(t, runner.Starts())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "launching", StateLaunching.String())
	assert.Equal(t, "unknown", State(42).String())
}
