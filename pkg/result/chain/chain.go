package chain

import (
	"context"

	"github.com/rlch/oxidized/pkg/result"
)

// Chain wraps a result.Result with a context to enable fluent chaining.
type Chain[T, E any] struct {
	ctx       context.Context
	res       result.Result[T, E]
	cancelErr error
}

// Start creates a new chain from a result.Result
func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Ok[T, E](v))
}

// FromError creates a new chain from an error value
func FromError[T, E any](ctx context.Context, e E) Chain[T, E] {
	return Start(ctx, result.Err[T](e))
}

// Result returns the current result, or the context error if the chain was
// stopped by cancellation. The result is nil only when cancellation happened
// before a step could produce a value of type T.
func (c Chain[T, E]) Result() (result.Result[T, E], error) {
	return c.res, c.cancelErr
}

func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

func (c Chain[T, E]) cancelled() bool {
	if c.cancelErr != nil {
		return true
	}
	return c.ctx.Err() != nil
}

func (c Chain[T, E]) stop() Chain[T, E] {
	if c.cancelErr == nil {
		c.cancelErr = c.ctx.Err()
	}
	return c
}

// Then continues with a step that returns a result of the same type.
func (c Chain[T, E]) Then(onOk func(ctx context.Context, v T) result.Result[T, E]) Chain[T, E] {
	if c.cancelled() {
		return c.stop()
	}
	return Then(c, onOk)
}

// Map transforms the successful value.
func (c Chain[T, E]) Map(onOk func(ctx context.Context, v T) T) Chain[T, E] {
	if c.cancelled() {
		return c.stop()
	}
	return Map(c, onOk)
}

// Validate turns an Ok into an Err carrying reason when valid is false.
func (c Chain[T, E]) Validate(validate func(ctx context.Context, v T) (valid bool, reason E)) Chain[T, E] {
	return c.Then(func(ctx context.Context, v T) result.Result[T, E] {
		if valid, reason := validate(ctx, v); !valid {
			return result.Err[T](reason)
		}
		return result.Ok[T, E](v)
	})
}

// Recover continues an Err chain with a step computed from the error.
func (c Chain[T, E]) Recover(onErr func(ctx context.Context, e E) result.Result[T, E]) Chain[T, E] {
	if c.cancelled() {
		return c.stop()
	}
	return Chain[T, E]{ctx: c.ctx, res: result.OrElse(c.res, func(e E) result.Result[T, E] {
		return onErr(c.ctx, e)
	})}
}

// Ensure triggers side effects for Ok or Err without changing the result.
// Either callback may be nil.
func (c Chain[T, E]) Ensure(onOk func(ctx context.Context, v T), onErr func(ctx context.Context, e E)) Chain[T, E] {
	if c.cancelled() {
		return c.stop()
	}

	if onOk != nil {
		result.Inspect(c.res, func(v T) { onOk(c.ctx, v) })
	}
	if onErr != nil {
		result.InspectErr(c.res, func(e E) { onErr(c.ctx, e) })
	}
	return c
}

// RepeatUntil runs onOk at least once and keeps running it while the chain
// is Ok and until reports true.
func (c Chain[T, E]) RepeatUntil(onOk func(ctx context.Context, v T) result.Result[T, E],
	until func(ctx context.Context, v T) bool) Chain[T, E] {

	for {
		c = c.Then(onOk)
		if c.cancelled() {
			return c.stop()
		}
		if c.res.IsErr() || !until(c.ctx, c.res.Unwrap()) {
			return c
		}
	}
}

// While runs onOk as long as the chain is Ok and while reports true.
func (c Chain[T, E]) While(onOk func(ctx context.Context, v T) result.Result[T, E],
	while func(ctx context.Context, v T) bool) Chain[T, E] {

	for !c.cancelled() && c.res.IsOk() && while(c.ctx, c.res.Unwrap()) {
		c = c.Then(onOk)
	}
	if c.cancelled() {
		return c.stop()
	}
	return c
}

// Or returns the first Ok chain of c and alternative. Without an Ok, a
// cancelled chain is preferred over an Err so that cancellation is not lost.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	candidates := []Chain[T, E]{c, alternative}

	for _, ch := range candidates {
		if ch.cancelErr == nil && ch.res != nil && ch.res.IsOk() {
			return ch
		}
	}
	for _, ch := range candidates {
		if ch.cancelErr != nil {
			return ch
		}
	}
	return c
}

// And returns required when c is Ok, otherwise c.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.cancelErr != nil || c.res == nil || c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value.
func (c Chain[T, E]) Finally(onOk func(ctx context.Context, v T) T,
	onErr func(ctx context.Context, e E) T,
	onCancel func(ctx context.Context, err error) T) T {
	return Finally(c, onOk, onErr, onCancel)
}

// Then chains a step that may change the success type.
func Then[T, U, E any](c Chain[T, E], onOk func(ctx context.Context, v T) result.Result[U, E]) Chain[U, E] {
	if cause := cancelCause(c); cause != nil {
		return Chain[U, E]{ctx: c.ctx, res: carry[T, U](c.res), cancelErr: cause}
	}

	return Chain[U, E]{ctx: c.ctx, res: result.AndThen(c.res, func(v T) result.Result[U, E] {
		return onOk(c.ctx, v)
	})}
}

// Map chains a pure transformation that may change the success type.
func Map[T, U, E any](c Chain[T, E], onOk func(ctx context.Context, v T) U) Chain[U, E] {
	return Then(c, func(ctx context.Context, v T) result.Result[U, E] {
		return result.Ok[U, E](onOk(ctx, v))
	})
}

// Try chains a (value, error) step onto a chain of error typed results.
func Try[T, U any](c Chain[T, error], onOk func(ctx context.Context, v T) (U, error)) Chain[U, error] {
	return Then(c, func(ctx context.Context, v T) result.Result[U, error] {
		return result.FromPair(onOk(ctx, v))
	})
}

// Finally collapses the chain into a value of any type.
func Finally[T, E, R any](c Chain[T, E],
	onOk func(ctx context.Context, v T) R,
	onErr func(ctx context.Context, e E) R,
	onCancel func(ctx context.Context, err error) R) R {

	if c.cancelErr != nil {
		return onCancel(c.ctx, c.cancelErr)
	}
	return result.Match(c.res,
		func(v T) R { return onOk(c.ctx, v) },
		func(e E) R { return onErr(c.ctx, e) })
}

func cancelCause[T, E any](c Chain[T, E]) error {
	if c.cancelErr != nil {
		return c.cancelErr
	}
	return c.ctx.Err()
}

// carry keeps an Err across a type change; an Ok value cannot be carried
// and becomes nil.
func carry[T, U, E any](r result.Result[T, E]) result.Result[U, E] {
	if r == nil || r.IsOk() {
		return nil
	}
	return result.Err[U](r.UnwrapErr())
}
