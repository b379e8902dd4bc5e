package errors

import "fmt"

// ListFailed creates a session listing failure. The message points users at
// the most common cause, an outdated sesh CLI without --json support.
func ListFailed(cause error) *SeshError {
	return Wrap(cause, ErrCodeListFailed, "Please upgrade to the latest version of the sesh CLI")
}

// ConnectFailed creates a connect failure for the named session
func ConnectFailed(session string, cause error) *SeshError {
	return Wrap(cause, ErrCodeConnectFailed, fmt.Sprintf("could not connect to session %q", session)).
		WithDetail("session", session)
}

// CloseFailed creates a close failure for the named session
func CloseFailed(session string, cause error) *SeshError {
	return Wrap(cause, ErrCodeCloseFailed, fmt.Sprintf("could not close session %q", session)).
		WithDetail("session", session)
}

// ActivationFailed creates a window activation failure. cause is the
// diagnostic from the focus dispatch, not from the fallback launch.
func ActivationFailed(class string, cause error) *SeshError {
	return Wrap(cause, ErrCodeActivationFailed, "Failed to focus or launch the terminal").
		WithDetail("class", class)
}

// BackendNotRunning creates the precondition failure raised when tmux is down
func BackendNotRunning() *SeshError {
	return New(ErrCodePreconditionFailed, "Please start tmux before using this command.")
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *SeshError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *SeshError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// InvalidInput creates an error for rejected user input
func InvalidInput(field string, cause error) *SeshError {
	return Wrap(cause, ErrCodeInvalidInput, fmt.Sprintf("invalid %s", field)).
		WithDetail("field", field)
}
