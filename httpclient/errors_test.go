package httpclient

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOutcomeError_Transport(t *testing.T) {
	err := OutcomeError(Outcome{Succeeded: false})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTransport(err) {
		t.Errorf("expected transport error, got %v", err)
	}
	if err.StatusCode != 0 {
		t.Errorf("transport errors carry no status, got %d", err.StatusCode)
	}
}

func TestOutcomeError_InvalidResponse(t *testing.T) {
	err := OutcomeError(Outcome{Succeeded: true, StatusCode: 500, Body: []byte("boom")})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsInvalidResponse(err) {
		t.Errorf("expected invalid_response error, got %v", err)
	}
	if err.StatusCode != 500 {
		t.Errorf("expected status 500, got %d", err.StatusCode)
	}
	if string(err.Body) != "boom" {
		t.Errorf("body not preserved: %q", err.Body)
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("message should name the status code: %v", err)
	}
}

func TestOutcomeError_Valid(t *testing.T) {
	if err := OutcomeError(Outcome{Succeeded: true, StatusCode: 200}); err != nil {
		t.Fatalf("valid outcome should yield nil, got %v", err)
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("bad json")
	err := NewDecodeError(cause)
	if !IsDecode(err) {
		t.Errorf("expected decode error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("decode error should unwrap to its cause")
	}
}

func TestErrorHelpers_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", NewTransportError())
	if !IsTransport(wrapped) {
		t.Error("IsTransport should see through wrapping")
	}
	if IsInvalidResponse(wrapped) {
		t.Error("IsInvalidResponse should not match a transport error")
	}
}
