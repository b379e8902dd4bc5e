package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/seshconnect/errors"
)

// ErrorHandler prints user-friendly error messages. Raw command output is
// only shown in verbose mode.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// reportedError marks an error the user was already notified about.
type reportedError struct {
	error
}

func (r reportedError) Unwrap() error { return r.error }

// Reported marks err as already shown to the user, so Handle only sets the
// exit status and prints verbose details.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err}
}

// Handle prints err and returns it unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out

	var reported reportedError
	if stderrors.As(err, &reported) {
		h.details(err)
		return err
	}

	switch errors.GetCode(err) {
	case errors.ErrCodePreconditionFailed:
		fmt.Fprintf(out, "❌ tmux isn't running. %s\n", errors.UserMessage(err))

	case errors.ErrCodeListFailed:
		fmt.Fprintf(out, "❌ Couldn't get sessions. %s\n", errors.UserMessage(err))

	case errors.ErrCodeConnectFailed, errors.ErrCodeCloseFailed:
		fmt.Fprintf(out, "❌ %s\n", capitalize(errors.UserMessage(err)))
		fmt.Fprintf(out, "Run 'seshconnect list' to see available sessions.\n")

	case errors.ErrCodeActivationFailed:
		fmt.Fprintf(out, "❌ %s\n", errors.UserMessage(err))
		fmt.Fprintf(out, "Check terminal.dispatcher and terminal.binary in 'seshconnect config show'.\n")

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(out, "❌ %s\n", errors.UserMessage(err))
		fmt.Fprintf(out, "Run 'seshconnect config path' to see where preferences are read from.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeInvalidInput:
		// The cause is the user's own input, so it is safe to echo.
		fmt.Fprintf(out, "❌ %v\n", err)

	default:
		fmt.Fprintf(out, "❌ Error: %v\n", err)
	}

	h.details(err)
	return err
}

func (h *ErrorHandler) details(err error) {
	out := h.Out
	if h.Verbose {
		if seshErr, ok := errors.As(err); ok {
			fmt.Fprintf(out, "\nError details:\n%s\n", seshErr.ToJSON())
			if seshErr.Cause != nil {
				fmt.Fprintf(out, "Cause: %v\n", seshErr.Cause)
			}
		}
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
