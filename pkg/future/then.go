package future

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Then returns a future fulfilled with fn applied to f's value. Rejection and
// cancellation of f pass through unchanged and fn is not called. A panic in
// fn rejects the returned future with the panic value.
func Then[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	next, p := New[U]()

	f.OnSettle(func() {
		state, v, cause, cancelErr := f.snapshot()
		if state != StateFulfilled {
			forward(p, state, cause, cancelErr)
			return
		}

		u, cause, panicked := protect(fn, v)
		if panicked {
			p.Reject(cause)
			return
		}
		p.Resolve(u)
	})

	return next
}

// FlatMap is Then for continuations that return a future of their own; the
// returned future follows the one produced by fn.
func FlatMap[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	next, p := New[U]()

	f.OnSettle(func() {
		state, v, cause, cancelErr := f.snapshot()
		if state != StateFulfilled {
			forward(p, state, cause, cancelErr)
			return
		}

		inner, cause, panicked := protect(fn, v)
		switch {
		case panicked:
			p.Reject(cause)
		case inner == nil:
			p.Reject(ErrNilFuture)
		default:
			Follow(p, inner)
		}
	})

	return next
}

// Follow settles p the same way f settles.
func Follow[T any](p Promise[T], f *Future[T]) {
	f.OnSettle(func() {
		state, v, cause, cancelErr := f.snapshot()
		if state == StateFulfilled {
			p.Resolve(v)
			return
		}
		forward(p, state, cause, cancelErr)
	})
}

// All awaits every future concurrently and returns their values in order.
// The first rejection or cancellation stops the wait and is returned.
func All[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	g, gctx := errgroup.WithContext(ctx)
	values := make([]T, len(futures))

	for i, f := range futures {
		g.Go(func() error {
			v, err := f.Await(gctx)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

func forward[T any](p Promise[T], state State, cause any, cancelErr error) {
	switch state {
	case StateRejected:
		p.Reject(cause)
	case StateCancelled:
		p.Cancel(cancelErr)
	}
}

func protect[T, U any](fn func(T) U, v T) (u U, cause any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			cause, panicked = r, true
		}
	}()
	return fn(v), nil, false
}
