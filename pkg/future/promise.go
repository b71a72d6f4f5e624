package future

// Promise settles the Future it was created with. Only the first settling
// call has an effect; later calls report false.
type Promise[T any] struct {
	f *Future[T]
}

// New creates a pending future together with its promise.
func New[T any]() (*Future[T], Promise[T]) {
	f := newFuture[T]()
	return f, Promise[T]{f: f}
}

// Resolve fulfills the future with v.
func (p Promise[T]) Resolve(v T) bool {
	return p.f.settle(StateFulfilled, v, nil, nil)
}

// Reject settles the future with cause, which may be any value.
func (p Promise[T]) Reject(cause any) bool {
	var zero T
	return p.f.settle(StateRejected, zero, cause, nil)
}

// Cancel settles the future as cancelled. A nil err means plain ErrCancelled.
func (p Promise[T]) Cancel(err error) bool {
	var zero T
	return p.f.settle(StateCancelled, zero, nil, cancellation(err))
}

// Future returns the read side of the promise.
func (p Promise[T]) Future() *Future[T] {
	return p.f
}
