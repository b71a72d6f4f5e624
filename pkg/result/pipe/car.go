package pipe

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rlch/oxidized/pkg/result"
)

// Car carries one Result through a pipeline.
type Car[T, E any] struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Result    result.Result[T, E]
	// Stopped is non-nil when the car left the railway without a Result of
	// its current type: the context ended, or a stage failed outside the
	// Result channel. Result then holds the car's last Err, or nil.
	Stopped error
}

// Board puts v on the railway as an Ok car with a fresh identity.
func Board[T, E any](v T) Car[T, E] {
	return BoardResult(result.Ok[T, E](v))
}

// BoardResult puts r on the railway with a fresh identity.
func BoardResult[T, E any](r result.Result[T, E]) Car[T, E] {
	return Car[T, E]{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Result:    r,
	}
}

// Move returns a car with the identity of from and the result r.
func Move[In, Out, E any](from Car[In, E], r result.Result[Out, E]) Car[Out, E] {
	return Car[Out, E]{
		ID:        from.ID,
		CreatedAt: from.CreatedAt,
		Result:    r,
	}
}

// Halt returns a stopped car with the identity of from. An Err is carried
// over; an Ok value cannot change type and is dropped.
func Halt[Out, In, E any](from Car[In, E], cause error) Car[Out, E] {
	var r result.Result[Out, E]
	if from.Result != nil && from.Result.IsErr() {
		r = result.Err[Out](from.Result.UnwrapErr())
	}
	return Car[Out, E]{
		ID:        from.ID,
		CreatedAt: from.CreatedAt,
		Result:    r,
		Stopped:   cause,
	}
}

func (c Car[T, E]) IsStopped() bool {
	return c.Stopped != nil
}

// StageFailure marks a car whose stage panicked or whose future was rejected.
type StageFailure struct {
	Cause any
}

func (f *StageFailure) Error() string {
	return fmt.Sprintf("pipe: stage failed: %v", f.Cause)
}

func (f *StageFailure) Unwrap() error {
	err, _ := f.Cause.(error)
	return err
}
