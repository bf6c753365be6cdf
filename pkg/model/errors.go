package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUpstream           = errors.New("upstream failure")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// ValidationError names the offending input field. Reason is empty when the field is missing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return "Missing required field: " + e.Field
	}

	return fmt.Sprintf("Invalid field %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
