package pipe

import (
	"context"
	"sync"

	"github.com/rlch/oxidized/pkg/result"
)

// Run drives stage over inputCh with the given number of workers; the worker
// count stored in ctx by WithWorkers takes precedence. Cars in flight when ctx
// ends are discarded.
func Run[In, Out, E any](ctx context.Context, inputCh <-chan Car[In, E],
	stage Stage[In, Out, E], workers int) <-chan Car[Out, E] {
	return RunWith(ctx, inputCh, stage, CancellationHandlers[In, Out, E]{}, nil, workers)
}

// RunWith is Run with cancellation handlers and a callback for every
// delivered car.
func RunWith[In, Out, E any](ctx context.Context, inputCh <-chan Car[In, E],
	stage Stage[In, Out, E],
	handlers CancellationHandlers[In, Out, E],
	onDelivered func(ctx context.Context, car Car[Out, E]), workers int) <-chan Car[Out, E] {

	out := make(chan Car[Out, E])
	wg := &sync.WaitGroup{}

	lines := Workers(ctx, workers)
	if lines < 1 {
		lines = 1
	}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, stage, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Then composes two stages into one.
func Then[A, B, C, E any](first Stage[A, B, E], second Stage[B, C, E]) Stage[A, C, E] {
	return func(ctx context.Context, car Car[A, E]) <-chan Car[C, E] {
		out := make(chan Car[C, E], 1)

		go func() {
			defer close(out)

			mid, ok := <-first(ctx, car)
			if !ok {
				return
			}
			if next, ok := <-second(ctx, mid); ok {
				out <- next
			}
		}()

		return out
	}
}

type FinallyHandlers[T, E, R any] struct {
	OnOk  func(ctx context.Context, v T) R
	OnErr func(ctx context.Context, e E) R
	// OnStop handles stopped cars; when nil they are skipped.
	OnStop func(ctx context.Context, car Car[T, E]) R
}

// Finally collapses every car into a value. Input is read until it closes.
// After ctx ends, values are still delivered when draining is enabled
// (the default) and discarded otherwise.
func Finally[T, E, R any](ctx context.Context, inputCh <-chan Car[T, E],
	handlers FinallyHandlers[T, E, R]) <-chan R {

	out := make(chan R)
	log := Logger(ctx)

	go func() {
		defer close(out)

		for car := range inputCh {
			var v R
			switch {
			case !car.IsStopped():
				v = finalize(ctx, car, handlers)
			case handlers.OnStop != nil:
				v = handlers.OnStop(ctx, car)
			default:
				log.Debug("finally skipped stopped car", "car", car.ID, "cause", car.Stopped)
				continue
			}

			select {
			case out <- v:
				continue
			case <-ctx.Done():
			}

			if !DrainOnCancelEnabled(ctx, true) {
				log.Debug("finally discarding after cancel", "car", car.ID)
				continue
			}
			out <- v
		}
	}()

	return out
}

func finalize[T, E, R any](ctx context.Context, car Car[T, E], handlers FinallyHandlers[T, E, R]) R {
	return result.Match(car.Result,
		func(v T) R { return handlers.OnOk(ctx, v) },
		func(e E) R { return handlers.OnErr(ctx, e) })
}
