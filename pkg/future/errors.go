package future

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrCancelled = errors.New("future: cancelled")
	ErrNilFuture = errors.New("future: continuation returned nil future")
)

// RejectedError is returned by Await for a rejected future.
type RejectedError struct {
	Cause any
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("future: rejected: %v", e.Cause)
}

// Unwrap exposes the cause when it is itself an error.
func (e *RejectedError) Unwrap() error {
	err, _ := e.Cause.(error)
	return err
}

// IsCancellation reports whether err signals cancellation rather than failure.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCancelled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func cancellation(err error) error {
	if err == nil {
		return ErrCancelled
	}
	if errors.Is(err, ErrCancelled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCancelled, err)
}
