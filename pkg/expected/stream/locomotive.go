package stream

import (
	"context"
	"sync"

	"github.com/apex/log"
)

// Stage turns one tracked item into another. Stages built by this package
// keep the item's ID and Position.
type Stage[In, Out, E any] func(ctx context.Context, input Tracked[In, E]) Tracked[Out, E]

type CancellationHandlers[In, Out, E any] struct {
	// OnCancelUnprocessed receives inputs a line took (or drained) but never ran.
	OnCancelUnprocessed func(ctx context.Context, unprocessed Tracked[In, E])
	// OnCancelProcessed receives outputs that could not be delivered.
	OnCancelProcessed func(ctx context.Context, in Tracked[In, E], processed Tracked[Out, E])
}

// Locomotive is one worker line: it feeds inputCh through stage into outCh
// until inputCh closes or ctx is done.
func Locomotive[In, Out, E any](ctx context.Context, inputCh <-chan Tracked[In, E], outCh chan<- Tracked[Out, E],
	stage Stage[In, Out, E],
	handlers CancellationHandlers[In, Out, E],
	onSuccess func(ctx context.Context, out Tracked[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	logger := LoggerFrom(ctx)

	for {
		select {
		case <-ctx.Done():
			drain(ctx, inputCh, handlers, logger)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				unprocessed(ctx, in, handlers, logger)
				drain(ctx, inputCh, handlers, logger)
				return
			}

			pr := stage(ctx, in)

			select {
			case <-ctx.Done():
				logger.WithFields(log.Fields{
					"id":       pr.ID,
					"position": pr.Position,
				}).Debug("stream: processed item dropped on cancel")
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr)
				}
				drain(ctx, inputCh, handlers, logger)
				return
			case outCh <- pr:
				if onSuccess != nil {
					onSuccess(ctx, pr)
				}
			}
		}
	}
}

func unprocessed[In, Out, E any](ctx context.Context, in Tracked[In, E],
	handlers CancellationHandlers[In, Out, E], logger log.Interface) {

	logger.WithFields(log.Fields{
		"id":       in.ID,
		"position": in.Position,
	}).Debug("stream: item dropped on cancel")
	if handlers.OnCancelUnprocessed != nil {
		handlers.OnCancelUnprocessed(ctx, in)
	}
}

// drain reports queued inputs as unprocessed when ProcessRemaining is enabled.
// Upstream lines and sources close their outputs on cancel, so it terminates.
func drain[In, Out, E any](ctx context.Context, inputCh <-chan Tracked[In, E],
	handlers CancellationHandlers[In, Out, E], logger log.Interface) {

	if !IsProcessRemainingEnabled(ctx, false) {
		return
	}
	for in := range inputCh {
		unprocessed(ctx, in, handlers, logger)
	}
}
