package pipe

import (
	"context"

	"github.com/rlch/oxidized/pkg/result"
)

type LoadHandlers[T any] struct {
	OnStartFail func(ctx context.Context, values []T)
	OnBoarded   func(ctx context.Context, value T)
	OnBreak     func(ctx context.Context, rest []T)
}

// Load boards every value as an Ok car and sends it on the returned channel.
// Sending stops when ctx is done.
func Load[T, E any](ctx context.Context, values []T) <-chan Car[T, E] {
	return LoadWithHandlers[T, E](ctx, LoadHandlers[T]{}, values)
}

func LoadWithHandlers[T, E any](ctx context.Context, handlers LoadHandlers[T], values []T) <-chan Car[T, E] {
	return load(ctx, values, Board[T, E], handlers)
}

// LoadResults boards every result as it is.
func LoadResults[T, E any](ctx context.Context, results []result.Result[T, E]) <-chan Car[T, E] {
	return load(ctx, results, BoardResult[T, E], LoadHandlers[result.Result[T, E]]{})
}

func load[V, T, E any](ctx context.Context, values []V, board func(V) Car[T, E],
	handlers LoadHandlers[V]) <-chan Car[T, E] {

	in := make(chan Car[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- board(v):
				if handlers.OnBoarded != nil {
					handlers.OnBoarded(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// Unload reads ch until it is closed.
func Unload[T any](ch <-chan T) []T {
	res := make([]T, 0)
	for v := range ch {
		res = append(res, v)
	}
	return res
}

// First returns the first value from ch, or defaultV if ch closes or ctx is
// done first.
func First[T any](ctx context.Context, ch <-chan T, defaultV T) T {
	select {
	case v, ok := <-ch:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
