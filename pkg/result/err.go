package result

import (
	"fmt"

	"github.com/rlch/oxidized/pkg/option"
)

type errResult[T, E any] struct {
	err E
}

func (r errResult[T, E]) sealed() {}

func (r errResult[T, E]) IsOk() bool {
	return false
}

func (r errResult[T, E]) IsErr() bool {
	return true
}

func (r errResult[T, E]) Ok() option.Option[T] {
	return option.None[T]()
}

func (r errResult[T, E]) Err() option.Option[E] {
	return option.Some(r.err)
}

func (r errResult[T, E]) Expect(msg string) T {
	panic(&PreconditionFailure{Msg: msg})
}

func (r errResult[T, E]) ExpectErr(string) E {
	return r.err
}

// Unwrap panics with the held error value unchanged so that a recover
// further up sees the original value.
func (r errResult[T, E]) Unwrap() T {
	panic(r.err)
}

func (r errResult[T, E]) UnwrapErr() E {
	return r.err
}

func (r errResult[T, E]) UnwrapOr(fallback T) T {
	return fallback
}

func (r errResult[T, E]) UnwrapOrElse(fallback func(E) T) T {
	return fallback(r.err)
}

func (r errResult[T, E]) String() string {
	return fmt.Sprintf("Err(%v)", r.err)
}
