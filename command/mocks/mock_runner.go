package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/grovetools/seshconnect/command"
)

// Call records a single invocation made through MockRunner.
type Call struct {
	Env  []string
	Name string
	Args []string
}

// Line renders the call as a command line, e.g. "sesh connect --switch -- foo".
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// MockRunner is a mock implementation of command.Runner for testing
type MockRunner struct {
	RunFunc   func(ctx context.Context, name string, args ...string) (command.Result, error)
	StartFunc func(ctx context.Context, name string, args ...string) error

	mu     sync.Mutex
	calls  []Call
	starts []Call
}

// Run calls the mock function
func (m *MockRunner) Run(ctx context.Context, env []string, name string, args ...string) (command.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Env: env, Name: name, Args: args})
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return command.Result{}, nil
}

// Start calls the mock function
func (m *MockRunner) Start(ctx context.Context, env []string, name string, args ...string) error {
	m.mu.Lock()
	m.starts = append(m.starts, Call{Env: env, Name: name, Args: args})
	m.mu.Unlock()

	if m.StartFunc != nil {
		return m.StartFunc(ctx, name, args...)
	}
	return nil
}

// Calls returns the recorded Run invocations.
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// Starts returns the recorded Start invocations.
func (m *MockRunner) Starts() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.starts...)
}

// CountPrefix counts Run invocations whose command line starts with prefix.
func (m *MockRunner) CountPrefix(prefix string) int {
	n := 0
	for _, c := range m.Calls() {
		if strings.HasPrefix(c.Line(), prefix) {
			n++
		}
	}
	return n
}
