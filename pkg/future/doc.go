// Package future contains Future[T], a deferred value produced by a single
// pending computation, and Promise[T], the write side used to settle it.
//
// A Future settles exactly once into one of three final states:
// - StateFulfilled: the computation produced a value
// - StateRejected: the computation failed; the raw cause is kept as is
// - StateCancelled: the computation was abandoned; this is never reported as a rejection
//
// Await blocks until settlement or until the caller's context is done.
// Continuations registered with OnSettle, Then and FlatMap run in registration
// order on the goroutine that settles the future.
package future
