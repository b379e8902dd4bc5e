// Package workflow sequences the user-facing actions: loading the session
// list, connecting (with optional window focus), and closing sessions.
package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/seshconnect/errors"
	"github.com/grovetools/seshconnect/pkg/sesh"
)

// State is the controller's current step.
type State int

const (
	StateIdle State = iota
	StateChecking
	StateLoading
	StateConnecting
	StateFocusPending
	StateConfirming
	StateClosing
	StateDone
	StateError
)

var stateNames = map[State]string{
	StateIdle:         "idle",
	StateChecking:     "checking",
	StateLoading:      "loading",
	StateConnecting:   "connecting",
	StateFocusPending: "focus-pending",
	StateConfirming:   "confirming",
	StateClosing:      "closing",
	StateDone:         "done",
	StateError:        "error",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Notification titles and messages.
const (
	TitleBackendDown    = "tmux isn't running"
	TitleListFailed     = "Couldn't get sessions"
	TitleConnectFailed  = "Couldn't connect to session"
	TitleSessionClosed  = "Session closed"
	TitleCloseFailed    = "Couldn't close session"
	TitleCloseSession   = "Close Session"
	ActionCancel        = "Cancel"
	closeConfirmMessage = "Are you sure you want to close the session \"%s\"?"
	closedMessage       = "Successfully closed session \"%s\""
)

// Dependencies wires a Controller to its collaborators. All fields are
// required except Logger.
type Dependencies struct {
	Lister    SessionLister
	Lifecycle SessionLifecycle
	Backend   BackendChecker
	Focus     FocusChecker
	Activator Activator
	Notifier  Notifier
	Confirmer Confirmer
	Logger    *logrus.Entry
}

// Controller owns the session list and runs one workflow at a time.
type Controller struct {
	deps   Dependencies
	logger *logrus.Entry

	// run serializes workflows
	run sync.Mutex

	mu       sync.RWMutex
	state    State
	sessions []sesh.Session

	// OnTransition, when set, observes every state change. It is called
	// with no controller locks held.
	OnTransition func(from, to State)
}

// New creates a Controller.
func New(deps Dependencies) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	return &Controller{deps: deps, logger: logger, sessions: []sesh.Session{}}
}

// State returns the current step.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Sessions returns the last successfully loaded session list.
func (c *Controller) Sessions() []sesh.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]sesh.Session(nil), c.sessions...)
}

// Load checks that tmux is running and, if so, replaces the session list
// with a fresh one. On failure the previous list is kept.
func (c *Controller) Load(ctx context.Context) error {
	c.run.Lock()
	defer c.run.Unlock()
	defer c.enter(StateIdle)

	c.enter(StateChecking)
	if err := c.checkBackend(ctx); err != nil {
		return err
	}
	return c.refresh(ctx)
}

// Connect connects to name. Whether or not the connect worked, a
// focus-enabled session then gets exactly one activation attempt, whose
// failure is only logged. The session list is not refreshed.
func (c *Controller) Connect(ctx context.Context, name string) error {
	c.run.Lock()
	defer c.run.Unlock()
	defer c.enter(StateIdle)

	c.enter(StateChecking)
	if err := c.checkBackend(ctx); err != nil {
		return err
	}

	c.enter(StateConnecting)
	connectErr := c.deps.Lifecycle.Connect(ctx, name)
	if connectErr != nil {
		c.enter(StateError)
		c.logger.WithError(connectErr).WithField("session", name).Error("Connect failed")
		c.notify(ctx, StyleFailure, TitleConnectFailed, errors.UserMessage(connectErr))
	}

	if c.deps.Focus.IsFocusEnabled(name) {
		c.enter(StateFocusPending)
		if err := c.deps.Activator.Activate(ctx); err != nil {
			c.logger.WithError(err).WithField("session", name).Warn("Window activation failed")
		}
	}

	if connectErr == nil {
		c.enter(StateDone)
	}
	return connectErr
}

// Close asks the user to confirm, then kills name and reloads the list.
// closed is false when the user declined or the kill failed.
func (c *Controller) Close(ctx context.Context, name string) (closed bool, err error) {
	c.run.Lock()
	defer c.run.Unlock()
	defer c.enter(StateIdle)

	c.enter(StateConfirming)
	confirmed, err := c.deps.Confirmer.Confirm(ctx, CloseConfirmation(name))
	if err != nil {
		// No answer means no kill; report it like any other failed close.
		c.enter(StateError)
		c.logger.WithError(err).WithField("session", name).Error("Close confirmation failed")
		closeErr := errors.CloseFailed(name, err)
		c.notify(ctx, StyleFailure, TitleCloseFailed, errors.UserMessage(closeErr))
		return false, closeErr
	}
	if !confirmed {
		c.logger.WithField("session", name).Debug("Close cancelled")
		return false, nil
	}

	c.enter(StateClosing)
	if err := c.deps.Lifecycle.Close(ctx, name); err != nil {
		c.enter(StateError)
		c.logger.WithError(err).WithField("session", name).Error("Close failed")
		c.notify(ctx, StyleFailure, TitleCloseFailed, errors.UserMessage(err))
		return false, err
	}

	c.notify(ctx, StyleSuccess, TitleSessionClosed, fmt.Sprintf(closedMessage, name))

	// A failed refresh is already reported; the session is gone either way.
	_ = c.refresh(ctx)
	c.enter(StateDone)
	return true, nil
}

// CloseConfirmation is the question asked before closing name.
func CloseConfirmation(name string) Confirmation {
	return Confirmation{
		Title:         TitleCloseSession,
		Message:       fmt.Sprintf(closeConfirmMessage, name),
		PrimaryAction: TitleCloseSession,
		DismissAction: ActionCancel,
	}
}

func (c *Controller) checkBackend(ctx context.Context) error {
	if c.deps.Backend.IsRunning(ctx) {
		return nil
	}
	err := errors.BackendNotRunning()
	c.notify(ctx, StyleFailure, TitleBackendDown, err.Message)
	return err
}

func (c *Controller) refresh(ctx context.Context) error {
	c.enter(StateLoading)
	sessions, err := c.deps.Lister.List(ctx)
	if err != nil {
		c.enter(StateError)
		c.logger.WithError(err).Error("Listing sessions failed")
		c.notify(ctx, StyleFailure, TitleListFailed, errors.UserMessage(err))
		return err
	}

	c.mu.Lock()
	c.sessions = sessions
	c.mu.Unlock()
	return nil
}

func (c *Controller) notify(ctx context.Context, style Style, title, message string) {
	c.deps.Notifier.Notify(ctx, Notification{Style: style, Title: title, Message: message})
}

func (c *Controller) enter(next State) {
	c.mu.Lock()
	prev := c.state
	c.state = next
	c.mu.Unlock()

	if prev == next {
		return
	}
	c.logger.Debugf("workflow: %s -> %s", prev, next)
	if c.OnTransition != nil {
		c.OnTransition(prev, next)
	}
}
