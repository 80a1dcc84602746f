package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the progress or profile row a call depends on
// does not exist. Nothing is mutated.
var ErrNotFound = errors.New("record not found")

// ErrStoreUnavailable marks document-store write failures. It never escapes
// the finalize saga; the orchestrator degrades to a placeholder id instead.
var ErrStoreUnavailable = errors.New("document store unavailable")

// ValidationError reports a payload value outside its allowed domain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// UpstreamError reports a non-success response from the prediction service.
// Body carries the upstream response body verbatim.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("prediction service request failed: %s", e.Body)
}

// DecodeError reports a malformed prediction service response.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse prediction response: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// StoreError wraps a failed document-store write with the operation name.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("document store %s failed: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, ErrStoreUnavailable) match any StoreError.
func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }
