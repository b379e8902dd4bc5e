// Package tmux checks the tmux server that sesh sessions live in.
package tmux

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/seshconnect/command"
	"github.com/grovetools/seshconnect/pkg/environ"
)

type Client struct {
	runner command.Runner
	env    environ.Environment
	binary string
	socket string // Socket name for a dedicated tmux server (uses -L flag)
	logger *logrus.Entry
}

// NewClient creates a tmux client talking to the default server.
func NewClient(runner command.Runner, env environ.Environment, binary string, logger *logrus.Entry) *Client {
	return NewClientWithSocket(runner, env, binary, "", logger)
}

// NewClientWithSocket creates a tmux client that uses a dedicated server socket.
func NewClientWithSocket(runner command.Runner, env environ.Environment, binary, socket string, logger *logrus.Entry) *Client {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	return &Client{
		runner: runner,
		env:    env,
		binary: binary,
		socket: socket,
		logger: logger,
	}
}

// Socket returns the socket name this client uses, or empty string for default.
func (c *Client) Socket() string {
	return c.socket
}

// IsRunning reports whether a tmux server is up, using `tmux ls`. Any error
// or stderr output means "not running"; the reason is only logged.
func (c *Client) IsRunning(ctx context.Context) bool {
	if err := c.run(ctx, "ls"); err != nil {
		c.logger.WithError(err).Debug("tmux is not running")
		return false
	}
	return true
}

func (c *Client) run(ctx context.Context, args ...string) error {
	// Prepend socket flag if using a dedicated server
	if c.socket != "" {
		args = append([]string{"-L", c.socket}, args...)
	}

	res, err := c.runner.Run(ctx, c.env.Vars(), c.binary, args...)
	if err := res.Failure(err); err != nil {
		return fmt.Errorf("tmux %v: %w", args, err)
	}
	return nil
}
