package llm

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories a provider can signal.
type ErrorKind string

const (
	// KindNotConfigured marks a backend mode that is not implemented.
	KindNotConfigured ErrorKind = "NOT_CONFIGURED"
	// KindGenerationFailed wraps failures of the blocking path.
	KindGenerationFailed ErrorKind = "GENERATION_FAILED"
	// KindStreamingFailed wraps failures of the streaming path.
	KindStreamingFailed ErrorKind = "STREAMING_FAILED"
	// KindCancelled marks a caller-initiated abort.
	KindCancelled ErrorKind = "CANCELLED"
)

// Error is the typed error surfaced to callers. The original cause is kept
// for diagnostics and unwrapping.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf extracts the ErrorKind from err, or "" when err is not a provider
// error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
