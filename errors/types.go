package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Session manager errors
	ErrCodeListFailed    ErrorCode = "LIST_FAILED"
	ErrCodeConnectFailed ErrorCode = "CONNECT_FAILED"
	ErrCodeCloseFailed   ErrorCode = "CLOSE_FAILED"

	// Window focus errors
	ErrCodeActivationFailed ErrorCode = "ACTIVATION_FAILED"

	// Multiplexer errors
	ErrCodePreconditionFailed ErrorCode = "PRECONDITION_FAILED"

	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// General errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// SeshError represents a structured error with context. Message is the short
// summary safe to show to users; the raw diagnostic lives in Cause.
type SeshError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *SeshError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SeshError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *SeshError) WithDetail(key string, value interface{}) *SeshError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *SeshError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// Diagnostic returns the underlying cause text, or "" when there is none.
func (e *SeshError) Diagnostic() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

// New creates a new SeshError
func New(code ErrorCode, message string) *SeshError {
	return &SeshError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SeshError
func Wrap(err error, code ErrorCode, message string) *SeshError {
	return &SeshError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As returns the first SeshError in err's chain.
func As(err error) (*SeshError, bool) {
	for err != nil {
		if seshErr, ok := err.(*SeshError); ok {
			return seshErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// Is checks if an error is a specific SeshError code
func Is(err error, code ErrorCode) bool {
	seshErr, ok := As(err)
	return ok && seshErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	seshErr, ok := As(err)
	if !ok {
		return ""
	}
	return seshErr.Code
}

// UserMessage returns the user-facing summary of err. Errors that did not
// come through this package never leak their text.
func UserMessage(err error) string {
	if seshErr, ok := As(err); ok && seshErr.Message != "" {
		return seshErr.Message
	}
	return "Unknown reason"
}
