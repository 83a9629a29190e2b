package tdch

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrValidation is matched by every error returned from NewParameters.
	ErrValidation = errors.New("invalid TDCH parameters")
	// ErrInternal is matched by errors caused by a Parameters value that NewParameters could not have produced.
	ErrInternal = errors.New("internal consistency error")
)

// ValidationError describes user input that cannot be turned into TDCH parameters.
// Diagnostic holds the masked string form of the input.
type ValidationError struct {
	Reason     string
	Diagnostic string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v. %v", ErrValidation, e.Reason, e.Diagnostic)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InternalError is returned when serialization meets a direction or source it does not understand.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInternal, e.Reason)
}

func (e *InternalError) Unwrap() error {
	return ErrInternal
}
