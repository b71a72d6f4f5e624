package result

import (
	"context"

	"github.com/rlch/oxidized/pkg/future"
)

// AsyncOf starts compute and settles with its outcome wrapped in a Result.
//
// A fulfilled computation becomes Ok. A rejection whose cause is an E
// becomes Err; any other cause leaves the returned future rejected. A
// cancelled computation, or one rejected with a cancellation error, leaves
// the returned future cancelled and is never turned into an Err.
func AsyncOf[T, E any](ctx context.Context,
	compute func(ctx context.Context) *future.Future[T]) *future.Future[Result[T, E]] {

	src := start(ctx, func(ctx context.Context, _ struct{}) *future.Future[T] {
		return compute(ctx)
	}, struct{}{})
	out, p := future.New[Result[T, E]]()

	src.OnSettle(func() {
		v, err := src.Await(context.Background())
		if err == nil {
			p.Resolve(Ok[T, E](v))
			return
		}

		rejected, isRejected := err.(*future.RejectedError)
		if !isRejected {
			p.Cancel(err)
			return
		}
		if future.IsCancellation(err) {
			p.Cancel(rejected.Unwrap())
			return
		}
		if e, ok := rejected.Cause.(E); ok {
			p.Resolve(Err[T](e))
			return
		}
		p.Reject(rejected.Cause)
	})

	return out
}

// MatchAsync starts exactly one of onOk or onErr and follows its future.
func MatchAsync[T, E, R any](ctx context.Context, r Result[T, E],
	onOk func(ctx context.Context, v T) *future.Future[R],
	onErr func(ctx context.Context, e E) *future.Future[R]) *future.Future[R] {

	switch r := r.(type) {
	case okResult[T, E]:
		return start(ctx, onOk, r.value)
	case errResult[T, E]:
		return start(ctx, onErr, r.err)
	default:
		panic(nilResult())
	}
}

// UnwrapOrElseAsync resolves to the Ok value, or to the outcome of fallback
// for an Err.
func UnwrapOrElseAsync[T, E any](ctx context.Context, r Result[T, E],
	fallback func(ctx context.Context, e E) *future.Future[T]) *future.Future[T] {

	switch r := r.(type) {
	case okResult[T, E]:
		return future.Resolved(r.value)
	case errResult[T, E]:
		return start(ctx, fallback, r.err)
	default:
		panic(nilResult())
	}
}

// MapAsync resolves to Ok of f's value, or passes an Err through without
// calling f.
func MapAsync[T, U, E any](ctx context.Context, r Result[T, E],
	f func(ctx context.Context, v T) *future.Future[U]) *future.Future[Result[U, E]] {

	switch r := r.(type) {
	case okResult[T, E]:
		return future.Then(start(ctx, f, r.value), Ok[U, E])
	case errResult[T, E]:
		return future.Resolved(Err[U](r.err))
	default:
		panic(nilResult())
	}
}

// MapErrAsync is MapAsync for the Err channel.
func MapErrAsync[T, E, F any](ctx context.Context, r Result[T, E],
	f func(ctx context.Context, e E) *future.Future[F]) *future.Future[Result[T, F]] {

	switch r := r.(type) {
	case okResult[T, E]:
		return future.Resolved(Ok[T, F](r.value))
	case errResult[T, E]:
		return future.Then(start(ctx, f, r.err), Err[T, F])
	default:
		panic(nilResult())
	}
}

// AndThenAsync follows the Result produced by f for an Ok.
func AndThenAsync[T, U, E any](ctx context.Context, r Result[T, E],
	f func(ctx context.Context, v T) *future.Future[Result[U, E]]) *future.Future[Result[U, E]] {

	switch r := r.(type) {
	case okResult[T, E]:
		return start(ctx, f, r.value)
	case errResult[T, E]:
		return future.Resolved(Err[U](r.err))
	default:
		panic(nilResult())
	}
}

// OrElseAsync follows the Result produced by f for an Err.
func OrElseAsync[T, E, F any](ctx context.Context, r Result[T, E],
	f func(ctx context.Context, e E) *future.Future[Result[T, F]]) *future.Future[Result[T, F]] {

	switch r := r.(type) {
	case okResult[T, E]:
		return future.Resolved(Ok[T, F](r.value))
	case errResult[T, E]:
		return start(ctx, f, r.err)
	default:
		panic(nilResult())
	}
}

// start calls fn synchronously. A panic in fn or a nil future rejects the
// returned future instead of unwinding the caller.
func start[A, R any](ctx context.Context, fn func(ctx context.Context, a A) *future.Future[R], a A) *future.Future[R] {
	return future.FlatMap(future.Resolved(a), func(a A) *future.Future[R] {
		return fn(ctx, a)
	})
}
