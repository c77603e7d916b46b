package services

import (
	"errors"
	"fmt"
)

// Domain failure reasons returned to the calling layer. The caller maps these
// to user-facing messages ("already completed today", "out of stock", ...);
// anything else is a persistence failure and safe to retry because a failed
// operation leaves no partial state.
var (
	ErrActivityNotFound    = errors.New("activity not found or inactive")
	ErrRewardNotFound      = errors.New("reward not found or inactive")
	ErrNoAccount           = errors.New("points account does not exist")
	ErrDuplicateCompletion = errors.New("activity already completed today")
	ErrOutOfStock          = errors.New("reward is out of stock")
	ErrInsufficientPoints  = errors.New("insufficient available points")
)

// PersistenceError wraps a storage failure from an atomic unit. The unit is
// fully rolled back, so retrying the same call cannot double-count.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
