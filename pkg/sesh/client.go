package sesh

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/seshconnect/command"
	"github.com/grovetools/seshconnect/errors"
	"github.com/grovetools/seshconnect/pkg/environ"
)

// Client runs the sesh CLI. Every call spawns exactly one process with the
// client's environment and waits for it; there is no retry.
type Client struct {
	runner  command.Runner
	env     environ.Environment
	binary  string
	builder *command.SafeBuilder
	logger  *logrus.Entry
}

// NewClient creates a sesh client. binary is the sesh executable name or
// path, resolved against env's PATH.
func NewClient(runner command.Runner, env environ.Environment, binary string, logger *logrus.Entry) *Client {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	return &Client{
		runner:  runner,
		env:     env,
		binary:  binary,
		builder: command.NewSafeBuilder(),
		logger:  logger,
	}
}

// List returns every session sesh knows about. Any failure, including
// unparseable output, is reported as LIST_FAILED; the diagnostic is logged.
func (c *Client) List(ctx context.Context) ([]Session, error) {
	out, err := c.run(ctx, "list", "--json")
	if err != nil {
		return nil, errors.ListFailed(err)
	}

	sessions, err := Decode([]byte(out), c.logger)
	if err != nil {
		c.logger.WithError(err).Error("sesh list returned invalid JSON")
		return nil, errors.ListFailed(err)
	}

	c.logger.WithField("count", len(sessions)).Debug("Listed sessions")
	return sessions, nil
}

// Connect connects to name and switches the active tmux client to it. The
// name follows "--" so sesh never reads it as a flag.
func (c *Client) Connect(ctx context.Context, name string) error {
	if err := c.builder.Validate("sessionName", name); err != nil {
		return errors.InvalidInput("session name", err)
	}

	if _, err := c.run(ctx, "connect", "--switch", "--", name); err != nil {
		return errors.ConnectFailed(name, err)
	}
	return nil
}

// Close kills the session called name.
func (c *Client) Close(ctx context.Context, name string) error {
	if err := c.builder.Validate("sessionName", name); err != nil {
		return errors.InvalidInput("session name", err)
	}

	if _, err := c.run(ctx, "kill", "--", name); err != nil {
		return errors.CloseFailed(name, err)
	}
	return nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	res, runErr := c.runner.Run(ctx, c.env.Vars(), c.binary, args...)
	if err := res.Failure(runErr); err != nil {
		c.logger.WithFields(logrus.Fields{
			"command": c.binary,
			"args":    args,
			"exit":    res.ExitCode,
			"stderr":  res.Stderr,
		}).WithError(err).Error("sesh command failed")
		return "", err
	}
	return res.Stdout, nil
}
