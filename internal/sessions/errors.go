package sessions

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no session exists for an identifier
	ErrNotFound = errors.New("session not found")

	// ErrValidation is the parent of every input/state validation failure
	ErrValidation = errors.New("validation failed")

	ErrAlreadyEnded     = fmt.Errorf("%w: session already ended", ErrValidation)
	ErrNegativeDuration = fmt.Errorf("%w: end time is before start time", ErrValidation)
	ErrInvalidBuyIn     = fmt.Errorf("%w: buy-in must be a positive number", ErrValidation)
	ErrInvalidCashOut   = fmt.Errorf("%w: cash out must be a non-negative number", ErrValidation)
	ErrLocationRequired = fmt.Errorf("%w: location is required", ErrValidation)
	ErrSessionActive    = fmt.Errorf("%w: another session is already active", ErrValidation)
	ErrSessionNotEnded  = fmt.Errorf("%w: end the session before editing its cash out or end time", ErrValidation)
)

// StoreError wraps an opaque failure from the session store
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeErr passes not-found and validation errors through untouched and wraps
// everything else
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
