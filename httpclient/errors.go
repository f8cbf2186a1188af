package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies client errors. Every failure is terminal at the point
// of detection: the flow stops, nothing unwinds further.
type ErrorCode int

const (
	// ErrCodeTransport indicates the underlying exchange never completed
	// (connection refused, DNS, timeout).
	ErrCodeTransport ErrorCode = iota
	// ErrCodeInvalidResponse indicates the backend answered with a non-2xx
	// status code.
	ErrCodeInvalidResponse
	// ErrCodeDecode indicates a 2xx response whose body could not be parsed.
	ErrCodeDecode
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTransport:
		return "transport"
	case ErrCodeInvalidResponse:
		return "invalid_response"
	case ErrCodeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a structured client error with classification.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 for transport-level errors).
	StatusCode int
	// Message describes the error.
	Message string
	// Body is the original response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport failure error.
func NewTransportError() *Error {
	return &Error{
		Code:    ErrCodeTransport,
		Message: "request did not complete",
	}
}

// NewInvalidResponseError creates an error for a non-2xx response.
func NewInvalidResponseError(statusCode int, body []byte) *Error {
	return &Error{
		Code:       ErrCodeInvalidResponse,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// NewDecodeError creates an error for an unparseable response body.
func NewDecodeError(err error) *Error {
	return &Error{
		Code:    ErrCodeDecode,
		Message: err.Error(),
		Err:     err,
	}
}

// OutcomeError converts a non-valid outcome into a typed error.
// Returns nil for valid outcomes.
func OutcomeError(o Outcome) *Error {
	switch Classify(o) {
	case StatusTransportFailed:
		return NewTransportError()
	case StatusInvalid:
		return NewInvalidResponseError(o.StatusCode, o.Body)
	default:
		return nil
	}
}

// IsTransport checks if an error is a transport failure.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsInvalidResponse checks if an error is a non-2xx response.
func IsInvalidResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidResponse
}

// IsDecode checks if an error is a decode failure.
func IsDecode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}
