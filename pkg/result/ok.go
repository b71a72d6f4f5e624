package result

import (
	"fmt"

	"github.com/rlch/oxidized/pkg/option"
)

type okResult[T, E any] struct {
	value T
}

func (r okResult[T, E]) sealed() {}

func (r okResult[T, E]) IsOk() bool {
	return true
}

func (r okResult[T, E]) IsErr() bool {
	return false
}

func (r okResult[T, E]) Ok() option.Option[T] {
	return option.Some(r.value)
}

func (r okResult[T, E]) Err() option.Option[E] {
	return option.None[E]()
}

func (r okResult[T, E]) Expect(string) T {
	return r.value
}

func (r okResult[T, E]) ExpectErr(msg string) E {
	panic(&PreconditionFailure{Msg: msg})
}

func (r okResult[T, E]) Unwrap() T {
	return r.value
}

func (r okResult[T, E]) UnwrapErr() E {
	panic(&UnexpectedState{Msg: "called UnwrapErr on " + r.String()})
}

func (r okResult[T, E]) UnwrapOr(T) T {
	return r.value
}

func (r okResult[T, E]) UnwrapOrElse(func(E) T) T {
	return r.value
}

func (r okResult[T, E]) String() string {
	return fmt.Sprintf("Ok(%v)", r.value)
}
