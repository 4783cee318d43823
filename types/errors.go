package types

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no upload record exists for an identifier.
var ErrNotFound = errors.New("record not found")

// ValidationError marks a missing or malformed request field. Handlers map
// it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError marks a failed call to an external collaborator (storage,
// database, LLM transport). Handlers map it to a generic 500.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}
