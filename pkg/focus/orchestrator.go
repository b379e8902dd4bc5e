// Package focus brings the terminal window to the foreground after a
// connect: it asks the compositor to focus the window by class, and launches
// the terminal when that fails.
package focus

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/seshconnect/command"
	"github.com/grovetools/seshconnect/errors"
	"github.com/grovetools/seshconnect/pkg/environ"
)

// State is a step of one activation.
type State int

const (
	StateIdle State = iota
	StateDispatching
	StateLaunching
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatching:
		return "dispatching"
	case StateLaunching:
		return "launching"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Options configures an Orchestrator.
type Options struct {
	// Dispatcher is the compositor CLI, e.g. hyprctl.
	Dispatcher string
	// Class is the window class of the terminal.
	Class string
	// Terminal is the terminal binary launched as a fallback.
	Terminal string
}

// Orchestrator runs the focus-then-launch chain.
type Orchestrator struct {
	runner  command.Runner
	env     environ.Environment
	opts    Options
	logger  *logrus.Entry
	builder *command.SafeBuilder

	// OnTransition, when set, observes every state change.
	OnTransition func(from, to State)
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(runner command.Runner, env environ.Environment, opts Options, logger *logrus.Entry) *Orchestrator {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	return &Orchestrator{
		runner:  runner,
		env:     env,
		opts:    opts,
		logger:  logger,
		builder: command.NewSafeBuilder(),
	}
}

// Activate focuses the terminal window, or launches the terminal if the
// compositor could not focus it. When both fail the returned
// ACTIVATION_FAILED error carries the compositor's diagnostic.
func (o *Orchestrator) Activate(ctx context.Context) error {
	state := StateIdle
	var dispatchErr error

	for {
		next := state
		switch state {
		case StateIdle:
			if err := o.builder.Validate("windowClass", o.opts.Class); err != nil {
				return errors.ActivationFailed(o.opts.Class, err)
			}
			next = StateDispatching

		case StateDispatching:
			dispatchErr = o.dispatch(ctx)
			switch {
			case dispatchErr == nil:
				next = StateDone
			case ctx.Err() != nil:
				// The dispatch was interrupted, not refused; a launch
				// would open a second terminal.
				o.logger.WithError(dispatchErr).Debug("Focus cancelled")
				next = StateFailed
			default:
				o.logger.WithError(dispatchErr).WithField("class", o.opts.Class).
					Info("Could not focus terminal window, launching it instead")
				next = StateLaunching
			}

		case StateLaunching:
			if err := o.runner.Start(ctx, o.env.Vars(), o.opts.Terminal); err != nil {
				o.logger.WithError(err).WithField("terminal", o.opts.Terminal).Warn("Could not launch terminal")
				next = StateFailed
			} else {
				next = StateDone
			}

		case StateDone:
			return nil

		case StateFailed:
			return errors.ActivationFailed(o.opts.Class, dispatchErr)
		}

		o.transition(state, next)
		state = next
	}
}

func (o *Orchestrator) dispatch(ctx context.Context) error {
	res, err := o.runner.Run(ctx, o.env.Vars(), o.opts.Dispatcher, "dispatch", "focuswindow", "class:"+o.opts.Class)
	if err := res.Failure(err); err != nil {
		o.logger.WithFields(logrus.Fields{
			"command": o.opts.Dispatcher,
			"exit":    res.ExitCode,
			"stderr":  res.Stderr,
		}).Debug("focus dispatch failed")
		return err
	}
	return nil
}

func (o *Orchestrator) transition(from, to State) {
	o.logger.Debugf("focus: %s -> %s", from, to)
	if o.OnTransition != nil {
		o.OnTransition(from, to)
	}
}
