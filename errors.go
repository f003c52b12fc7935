package whitelodge

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions callers most often branch on.
// Use [errors.Is] to detect them; the concrete error may be a
// [*ValidationError] wrapping one of these.
var (
	// ErrDuplicateSubscriber is returned by [Store.Subscribe] when the
	// subscriber is already on the store's subscriber list.
	ErrDuplicateSubscriber = errors.New("subscriber already subscribed")

	// ErrDuplicateStore is returned by [NewRegistry] when two stores share
	// the same name.
	ErrDuplicateStore = errors.New("duplicate store name")

	// ErrUnknownStore is returned by [NewBinding] when a requested store
	// name has no entry in the registry.
	ErrUnknownStore = errors.New("no store with that name")
)

// ValidationError describes a fail-fast validation failure.
//
// Every invalid input is rejected at the call site, before any mutation
// occurs, and the offending value is carried on the error for diagnostic
// logging. There is no retry and no recovery path: callers are expected to
// prevent these conditions, not handle them.
type ValidationError struct {
	// Op is the operation that rejected the input, e.g. "NewStore" or
	// "SetState".
	Op string

	// Reason describes what was wrong with the value.
	Reason string

	// Value is the offending input, kept for inspection.
	Value any

	// Err is an optional sentinel (e.g. [ErrDuplicateStore]) so that
	// errors.Is works across the wrapper.
	Err error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("whitelodge: %s: %s (got %v)", e.Op, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// validationErr builds a *ValidationError without a sentinel.
func validationErr(op, reason string, value any) *ValidationError {
	return &ValidationError{Op: op, Reason: reason, Value: value}
}
