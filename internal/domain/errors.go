package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds handlers need to tell apart.
// Everything else that escapes a service is treated as a persistence error
// and answered generically.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadSignature = errors.New("invalid signature")
)

// ValidationError reports bad input, naming what was wrong so the caller can
// fix the request. It never accompanies a state change.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError reports an illegal state machine transition or a lost
// concurrent claim, naming the state the order was actually in.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }
func (e *ConflictError) Unwrap() error { return ErrConflict }

func Conflictf(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}
