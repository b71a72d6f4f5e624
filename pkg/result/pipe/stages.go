package pipe

import (
	"context"
	"errors"

	"github.com/rlch/oxidized/pkg/future"
	"github.com/rlch/oxidized/pkg/result"
)

// lift runs step in its own goroutine. Stopped cars pass through untouched
// and a panic in step stops the car with a *StageFailure.
func lift[In, Out, E any](step func(ctx context.Context, car Car[In, E]) Car[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, car Car[In, E]) <-chan Car[Out, E] {
		out := make(chan Car[Out, E], 1)

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}
			if car.IsStopped() {
				out <- Halt[Out](car, car.Stopped)
				return
			}

			defer func() {
				if r := recover(); r != nil {
					out <- Halt[Out](car, &StageFailure{Cause: r})
				}
			}()
			out <- step(ctx, car)
		}()

		return out
	}
}

// AndThen lifts result.AndThen into a stage.
func AndThen[In, Out, E any](onOk func(ctx context.Context, v In) result.Result[Out, E]) Stage[In, Out, E] {
	return lift(func(ctx context.Context, car Car[In, E]) Car[Out, E] {
		return Move(car, result.AndThen(car.Result, func(v In) result.Result[Out, E] {
			return onOk(ctx, v)
		}))
	})
}

// Map lifts result.Map into a stage.
func Map[In, Out, E any](onOk func(ctx context.Context, v In) Out) Stage[In, Out, E] {
	return lift(func(ctx context.Context, car Car[In, E]) Car[Out, E] {
		return Move(car, result.Map(car.Result, func(v In) Out {
			return onOk(ctx, v)
		}))
	})
}

// Validate turns an Ok car into an Err car carrying reason when valid is false.
func Validate[T, E any](validate func(ctx context.Context, v T) (valid bool, reason E)) Stage[T, T, E] {
	return AndThen(func(ctx context.Context, v T) result.Result[T, E] {
		if valid, reason := validate(ctx, v); !valid {
			return result.Err[T](reason)
		}
		return result.Ok[T, E](v)
	})
}

// Fold maps both channels of a car. The error type is fixed for the
// pipeline, so onErr may only rewrite the error.
func Fold[In, Out, E any](onOk func(ctx context.Context, v In) Out,
	onErr func(ctx context.Context, e E) E) Stage[In, Out, E] {
	return lift(func(ctx context.Context, car Car[In, E]) Car[Out, E] {
		return Move(car, result.Fold(car.Result,
			func(v In) Out { return onOk(ctx, v) },
			func(e E) E { return onErr(ctx, e) }))
	})
}

// Tap runs onOk for Ok cars and onErr for Err cars. Either may be nil.
func Tap[T, E any](onOk func(ctx context.Context, v T), onErr func(ctx context.Context, e E)) Stage[T, T, E] {
	return lift(func(ctx context.Context, car Car[T, E]) Car[T, E] {
		if onOk != nil {
			result.Inspect(car.Result, func(v T) { onOk(ctx, v) })
		}
		if onErr != nil {
			result.InspectErr(car.Result, func(e E) { onErr(ctx, e) })
		}
		return car
	})
}

// Inspect runs a side effect for every car that is not stopped.
func Inspect[T, E any](sideEffect func(ctx context.Context, car Car[T, E])) Stage[T, T, E] {
	return lift(func(ctx context.Context, car Car[T, E]) Car[T, E] {
		sideEffect(ctx, car)
		return car
	})
}

// Try lifts a (value, error) step into a stage of error typed results.
func Try[In, Out any](onOk func(ctx context.Context, v In) (Out, error)) Stage[In, Out, error] {
	return AndThen(func(ctx context.Context, v In) result.Result[Out, error] {
		return result.FromPair(onOk(ctx, v))
	})
}

// Async lifts result.AndThenAsync into a stage and awaits the future inside
// the stage. A cancelled future stops the car with the cancellation error; a
// rejected one stops it with a *StageFailure.
func Async[In, Out, E any](onOk func(ctx context.Context, v In) *future.Future[result.Result[Out, E]]) Stage[In, Out, E] {
	return lift(func(ctx context.Context, car Car[In, E]) Car[Out, E] {
		r, err := result.AndThenAsync(ctx, car.Result, onOk).Await(ctx)
		if err == nil {
			return Move(car, r)
		}

		var rejected *future.RejectedError
		if errors.As(err, &rejected) && !future.IsCancellation(err) {
			return Halt[Out](car, &StageFailure{Cause: rejected.Cause})
		}
		return Halt[Out](car, err)
	})
}
