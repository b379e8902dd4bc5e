package errors

import (
	"fmt"
	"testing"
)

func TestSeshError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeListFailed, "list failed")
	if err.Code != ErrCodeListFailed {
		t.Errorf("expected code %s, got %s", ErrCodeListFailed, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConnectFailed, "connect failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeConnectFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeListFailed) {
		t.Error("Is should return false for non-matching code")
	}

	// Is must see through fmt.Errorf wrapping
	outer := fmt.Errorf("refresh: %w", wrapped)
	if !Is(outer, ErrCodeConnectFailed) {
		t.Error("Is should unwrap wrapped errors")
	}
	if GetCode(outer) != ErrCodeConnectFailed {
		t.Errorf("GetCode should unwrap, got %q", GetCode(outer))
	}

	// Test WithDetail
	detailed := err.WithDetail("session", "api").WithDetail("exitCode", 1)
	if detailed.Details["session"] != "api" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	cause := fmt.Errorf("exit status 1: no such session")

	err := ConnectFailed("api", cause)
	if err.Code != ErrCodeConnectFailed {
		t.Errorf("expected code %s, got %s", ErrCodeConnectFailed, err.Code)
	}
	if err.Details["session"] != "api" {
		t.Error("ConnectFailed should include session detail")
	}
	if err.Diagnostic() != cause.Error() {
		t.Errorf("expected diagnostic %q, got %q", cause.Error(), err.Diagnostic())
	}

	err = ListFailed(cause)
	if err.Message != "Please upgrade to the latest version of the sesh CLI" {
		t.Errorf("unexpected list message %q", err.Message)
	}

	err = BackendNotRunning()
	if err.Code != ErrCodePreconditionFailed {
		t.Errorf("expected code %s, got %s", ErrCodePreconditionFailed, err.Code)
	}
}

func TestUserMessage(t *testing.T) {
	cause := fmt.Errorf("stderr: can't find session: api")

	if got := UserMessage(CloseFailed("api", cause)); got != `could not close session "api"` {
		t.Errorf("unexpected user message %q", got)
	}

	// Raw errors never surface their text
	if got := UserMessage(cause); got != "Unknown reason" {
		t.Errorf("expected fallback message, got %q", got)
	}

	if got := UserMessage(nil); got != "Unknown reason" {
		t.Errorf("expected fallback message for nil, got %q", got)
	}
}
