package future

import (
	"context"
	"sync"

	"github.com/eapache/queue"
)

// State is the settlement state of a Future.
type State int32

const (
	StatePending State = iota
	StateFulfilled
	StateRejected
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFulfilled:
		return "fulfilled"
	case StateRejected:
		return "rejected"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Future is the read side of a pending computation. Create one with New, Go,
// Resolved, Rejected or Cancelled; the zero value never settles.
type Future[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	state     State
	value     T
	cause     any
	cancelErr error
	callbacks *queue.Queue
	// draining is set while the settling goroutine runs callbacks.
	draining bool
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done:      make(chan struct{}),
		state:     StatePending,
		callbacks: queue.New(),
	}
}

// Resolved returns an already fulfilled future.
func Resolved[T any](v T) *Future[T] {
	f, p := New[T]()
	p.Resolve(v)
	return f
}

// Rejected returns an already rejected future.
func Rejected[T any](cause any) *Future[T] {
	f, p := New[T]()
	p.Reject(cause)
	return f
}

// Cancelled returns an already cancelled future.
func Cancelled[T any](err error) *Future[T] {
	f, p := New[T]()
	p.Cancel(err)
	return f
}

// Go runs fn in its own goroutine. A nil error fulfills the future, a
// cancellation error (see IsCancellation) cancels it, any other error or a
// panic rejects it with that error or panic value.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f, p := New[T]()

	go func() {
		v, cause, panicked, err := call(ctx, fn)
		switch {
		case panicked:
			p.Reject(cause)
		case err == nil:
			p.Resolve(v)
		case IsCancellation(err):
			p.Cancel(err)
		default:
			p.Reject(err)
		}
	}()

	return f
}

func call[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (v T, cause any, panicked bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, panicked = r, true
		}
	}()
	v, err = fn(ctx)
	return v, nil, false, err
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Await blocks until the future settles or ctx is done.
//
// The error is nil when fulfilled, a *RejectedError when rejected, and an
// error matching ErrCancelled when the future was cancelled or ctx ended
// first.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result()
	default:
	}

	select {
	case <-f.done:
		return f.result()
	case <-ctx.Done():
		var zero T
		return zero, cancellation(ctx.Err())
	}
}

// OnSettle registers cb to run once after the future settles. Callbacks run
// one at a time in registration order on the goroutine that settles the
// future. A callback registered while settlement callbacks are still running
// is queued behind them; one registered after that runs immediately on the
// calling goroutine.
func (f *Future[T]) OnSettle(cb func()) {
	f.mu.Lock()
	if f.state == StatePending || f.draining {
		f.callbacks.Add(cb)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	cb()
}

func (f *Future[T]) snapshot() (State, T, any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.value, f.cause, f.cancelErr
}

func (f *Future[T]) result() (T, error) {
	state, v, cause, cancelErr := f.snapshot()
	var zero T

	switch state {
	case StateFulfilled:
		return v, nil
	case StateRejected:
		return zero, &RejectedError{Cause: cause}
	case StateCancelled:
		return zero, cancelErr
	default:
		panic("future: result read before settlement")
	}
}

func (f *Future[T]) settle(state State, v T, cause any, cancelErr error) bool {
	f.mu.Lock()
	if f.state != StatePending {
		f.mu.Unlock()
		return false
	}

	f.state = state
	f.value = v
	f.cause = cause
	f.cancelErr = cancelErr
	f.draining = true
	close(f.done)
	f.mu.Unlock()

	f.drain()
	return true
}

func (f *Future[T]) drain() {
	for {
		f.mu.Lock()
		if f.callbacks.Length() == 0 {
			f.draining = false
			f.mu.Unlock()
			return
		}
		cb := f.callbacks.Remove().(func())
		f.mu.Unlock()

		cb()
	}
}
