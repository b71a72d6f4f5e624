package result

import (
	"github.com/rlch/oxidized/pkg/option"
)

// Result is either Ok carrying a T or Err carrying an E.
//
// The interface is sealed: the only implementations are the two variants
// returned by Ok and Err, so a Result always holds exactly one payload.
type Result[T, E any] interface {
	// IsOk reports whether this is an Ok.
	IsOk() bool
	// IsErr reports whether this is an Err.
	IsErr() bool
	// Ok projects the success channel into an Option.
	Ok() option.Option[T]
	// Err projects the error channel into an Option.
	Err() option.Option[E]
	// Expect returns the Ok value, or panics with a *PreconditionFailure
	// carrying msg.
	Expect(msg string) T
	// ExpectErr returns the Err value, or panics with a *PreconditionFailure
	// carrying msg.
	ExpectErr(msg string) E
	// Unwrap returns the Ok value, or panics with the Err value itself.
	Unwrap() T
	// UnwrapErr returns the Err value, or panics with an *UnexpectedState.
	UnwrapErr() E
	UnwrapOr(fallback T) T
	UnwrapOrElse(fallback func(E) T) T
	String() string

	sealed()
}

// Ok returns a successful Result holding value.
func Ok[T, E any](value T) Result[T, E] {
	return okResult[T, E]{value: value}
}

// Err returns a failed Result holding err.
func Err[T, E any](err E) Result[T, E] {
	return errResult[T, E]{err: err}
}

// Of calls compute and wraps its return value in Ok. If compute panics with
// a value of type E, that value is returned in Err; a panic with any other
// value is not captured.
func Of[T, E any](compute func() T) (res Result[T, E]) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(E)
		if !ok {
			panic(r)
		}
		res = Err[T, E](e)
	}()

	return Ok[T, E](compute())
}

// Try calls fn and converts its (value, error) pair into a Result.
func Try[T any](fn func() (T, error)) Result[T, error] {
	return FromPair(fn())
}

// FromPair converts a Go (value, error) pair into a Result. A non-nil err
// always wins.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// ToPair converts a Result back into a Go (value, error) pair.
func ToPair[T any](r Result[T, error]) (T, error) {
	switch r := r.(type) {
	case okResult[T, error]:
		return r.value, nil
	case errResult[T, error]:
		var zero T
		return zero, r.err
	default:
		panic(nilResult())
	}
}

// Equal reports whether a and b are the same variant with equal payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc is Equal with caller supplied payload comparisons.
func EqualFunc[T, E any](a, b Result[T, E], eqOk func(T, T) bool, eqErr func(E, E) bool) bool {
	switch a := a.(type) {
	case okResult[T, E]:
		b, ok := b.(okResult[T, E])
		return ok && eqOk(a.value, b.value)
	case errResult[T, E]:
		b, ok := b.(errResult[T, E])
		return ok && eqErr(a.err, b.err)
	default:
		return b == nil
	}
}
