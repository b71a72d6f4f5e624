package pipe

import (
	"context"
	"sync"
)

// Stage turns one car into at most one car. A stage that closes its channel
// without sending drops the car.
type Stage[In, Out, E any] func(ctx context.Context, car Car[In, E]) <-chan Car[Out, E]

// CancellationHandlers decide what happens to cars when the context ends
// while a Locomotive is running. A nil handler discards.
type CancellationHandlers[In, Out, E any] struct {
	// OnCancel receives the rest of the input channel.
	OnCancel func(ctx context.Context, inputCh <-chan Car[In, E], outCh chan<- Car[Out, E])
	// OnCancelUnprocessed receives a car that was read but never processed.
	OnCancelUnprocessed func(ctx context.Context, unprocessed Car[In, E], outCh chan<- Car[Out, E])
	// OnCancelProcessed receives a car that was processed but not delivered.
	OnCancelProcessed func(ctx context.Context, in Car[In, E], processed Car[Out, E], outCh chan<- Car[Out, E])
}

// Locomotive pulls cars from inputCh through stage into outCh until inputCh
// closes or ctx ends.
func Locomotive[In, Out, E any](ctx context.Context, inputCh <-chan Car[In, E], outCh chan<- Car[Out, E],
	stage Stage[In, Out, E],
	handlers CancellationHandlers[In, Out, E],
	onDelivered func(ctx context.Context, car Car[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	log := Logger(ctx)

	cancel := func() {
		if handlers.OnCancel != nil {
			handlers.OnCancel(ctx, inputCh, outCh)
		}
	}

	for {
		select {
		case <-ctx.Done():
			log.Debug("locomotive cancelled while idle", "cause", ctx.Err())
			cancel()
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				log.Debug("locomotive cancelled before processing", "car", in.ID, "cause", ctx.Err())
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				cancel()
				return
			case pr, produced := <-stage(ctx, in):
				if !produced {
					if ctx.Err() != nil {
						log.Debug("locomotive cancelled while processing", "car", in.ID, "cause", ctx.Err())
						if handlers.OnCancelUnprocessed != nil {
							handlers.OnCancelUnprocessed(ctx, in, outCh)
						}
						cancel()
						return
					}
					log.Debug("stage dropped car", "car", in.ID)
					continue
				}

				select {
				case <-ctx.Done():
					log.Debug("locomotive cancelled before delivery", "car", in.ID, "cause", ctx.Err())
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					cancel()
					return
				case outCh <- pr:
					if onDelivered != nil {
						onDelivered(ctx, pr)
					}
				}
			}
		}
	}
}

// DrainHandlers deliver every car still on the railway as a stopped car when
// the context ends, unless ctx disables it with WithDrainOnCancel(ctx, false).
// The consumer must keep reading the output until it closes.
func DrainHandlers[In, Out, E any]() CancellationHandlers[In, Out, E] {
	return CancellationHandlers[In, Out, E]{
		OnCancel:            DrainRemaining[In, Out, E],
		OnCancelUnprocessed: DrainUnprocessed[In, Out, E],
		OnCancelProcessed:   KeepProcessed[In, Out, E],
	}
}

// DrainRemaining reads inputCh until it closes and delivers every car as stopped.
func DrainRemaining[In, Out, E any](ctx context.Context, inputCh <-chan Car[In, E], outCh chan<- Car[Out, E]) {
	if !DrainOnCancelEnabled(ctx, true) {
		return
	}
	for in := range inputCh {
		outCh <- Halt[Out](in, stopCause(ctx, in))
	}
}

// DrainUnprocessed delivers a car that was read but not processed as stopped.
func DrainUnprocessed[In, Out, E any](ctx context.Context, in Car[In, E], outCh chan<- Car[Out, E]) {
	if !DrainOnCancelEnabled(ctx, true) {
		return
	}
	outCh <- Halt[Out](in, stopCause(ctx, in))
}

// KeepProcessed delivers a processed car whose delivery was interrupted.
func KeepProcessed[In, Out, E any](ctx context.Context, _ Car[In, E], processed Car[Out, E], outCh chan<- Car[Out, E]) {
	if !DrainOnCancelEnabled(ctx, true) {
		return
	}
	outCh <- processed
}

func stopCause[T, E any](ctx context.Context, in Car[T, E]) error {
	if in.Stopped != nil {
		return in.Stopped
	}
	return ctx.Err()
}
