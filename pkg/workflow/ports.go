package workflow

import (
	"context"

	"github.com/grovetools/seshconnect/pkg/sesh"
)

// Style is the severity of a notification.
type Style int

const (
	StyleSuccess Style = iota
	StyleFailure
)

// Notification is a short message for the user. Message never carries raw
// command output.
type Notification struct {
	Style   Style
	Title   string
	Message string
}

// Notifier shows notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Confirmation is a yes/no question put to the user.
type Confirmation struct {
	Title         string
	Message       string
	PrimaryAction string
	DismissAction string
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, c Confirmation) (bool, error)
}

// SessionLister lists sessions.
type SessionLister interface {
	List(ctx context.Context) ([]sesh.Session, error)
}

// SessionLifecycle connects to and closes sessions.
type SessionLifecycle interface {
	Connect(ctx context.Context, name string) error
	Close(ctx context.Context, name string) error
}

// BackendChecker reports whether the multiplexer is up.
type BackendChecker interface {
	IsRunning(ctx context.Context) bool
}

// FocusChecker reports whether a session should take window focus.
type FocusChecker interface {
	IsFocusEnabled(sessionName string) bool
}

// Activator brings the terminal window forward.
type Activator interface {
	Activate(ctx context.Context) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(ctx context.Context, c Confirmation) (bool, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, c Confirmation) (bool, error) { return f(ctx, c) }
