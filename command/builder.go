package command

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// WaitDelay bounds how long Wait blocks for a killed command's output pipes
// to close, e.g. when a grandchild still holds them.
const WaitDelay = 2 * time.Second

var (
	windowClassPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	socketNamePattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// SafeBuilder provides validated command construction. Commands are never
// passed through a shell, so arguments reach the external program verbatim.
type SafeBuilder struct {
	validators map[string]func(string) error
	executor   Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		validators: makeDefaultValidators(),
		executor:   exec,
	}
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"sessionName": validateSessionName,
		"windowClass": validateWindowClass,
		"socketName":  validateSocketName,
		"binary":      validateBinary,
	}
}

// validateSessionName rejects names no session can have. Names starting with
// '-' are allowed; callers pass them after "--". Uniqueness is the session
// manager's concern, not ours.
func validateSessionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name cannot be empty")
	}

	if strings.ContainsAny(name, "\x00\n\r") {
		return fmt.Errorf("invalid session name: %q (contains control characters)", name)
	}

	return nil
}

// validateWindowClass ensures compositor class identifiers are a single token
func validateWindowClass(class string) error {
	if class == "" {
		return fmt.Errorf("window class cannot be empty")
	}

	if !windowClassPattern.MatchString(class) {
		return fmt.Errorf("invalid window class: %s", class)
	}

	return nil
}

// validateSocketName ensures tmux socket names are safe for -L
func validateSocketName(name string) error {
	if name == "" {
		return fmt.Errorf("socket name cannot be empty")
	}

	if !socketNamePattern.MatchString(name) {
		return fmt.Errorf("invalid socket name: %s", name)
	}

	return nil
}

// validateBinary ensures a configured executable name or path is usable
func validateBinary(name string) error {
	if name == "" {
		return fmt.Errorf("binary cannot be empty")
	}

	if strings.ContainsAny(name, ";|&$`\n") {
		return fmt.Errorf("binary contains invalid characters: %s", name)
	}

	return nil
}

// Command represents a validated command configuration
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	env      []string
	executor Executor
}

// Build creates a new command with validation. No timeout is applied: the
// command runs until the external program exits or ctx is cancelled.
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if err := validateBinary(name); err != nil {
		return nil, fmt.Errorf("invalid command name: %w", err)
	}

	return &Command{
		ctx:      ctx,
		name:     name,
		args:     args,
		executor: sb.executor,
	}, nil
}

// WithEnv sets the full environment for the command. A nil env inherits the
// current process environment.
func (c *Command) WithEnv(env []string) *Command {
	c.env = env
	return c
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// String renders the command line for logs.
func (c *Command) String() string {
	if len(c.args) == 0 {
		return c.name
	}
	return c.name + " " + strings.Join(c.args, " ")
}

// Exec creates and returns an exec.Cmd bound to the command's context.
func (c *Command) Exec() *exec.Cmd {
	cmd := c.executor.CommandContext(c.ctx, c.name, c.args...) //nolint:gosec // SafeBuilder provides validation
	cmd.Env = c.env
	cmd.WaitDelay = WaitDelay
	return cmd
}

// Detached creates an exec.Cmd that is not tied to the command's context, for
// programs that must outlive the caller.
func (c *Command) Detached() *exec.Cmd {
	cmd := c.executor.Command(c.name, c.args...) //nolint:gosec // SafeBuilder provides validation
	cmd.Env = c.env
	return cmd
}
