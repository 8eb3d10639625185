package stream

import (
	"context"
	"sync"

	"github.com/ib-77/expected/pkg/expected"
	"github.com/ib-77/expected/pkg/expected/solo"
)

// DefaultLines is used when neither the caller nor the context set a line count.
const DefaultLines = 1

func Run[T, E any](ctx context.Context, inputCh <-chan Tracked[T, E],
	stage Stage[T, T, E], lines int) <-chan Tracked[T, E] {
	return Turnout(ctx, inputCh, stage, lines)
}

// Turnout fans stage out over lines workers. A lines value below one takes
// the count from WithWorkerOptions, or DefaultLines.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan Tracked[In, E],
	stage Stage[In, Out, E], lines int) <-chan Tracked[Out, E] {
	return TurnoutWithHandlers(ctx, inputCh, stage, CancellationHandlers[In, Out, E]{}, nil, lines)
}

func TurnoutWithHandlers[In, Out, E any](ctx context.Context, inputCh <-chan Tracked[In, E],
	stage Stage[In, Out, E],
	handlers CancellationHandlers[In, Out, E],
	onSuccess func(ctx context.Context, out Tracked[Out, E]), lines int) <-chan Tracked[Out, E] {

	if lines < 1 {
		lines = GetWorkerMaxCount(ctx, DefaultLines)
	}

	out := make(chan Tracked[Out, E])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive[In, Out, E](ctx, inputCh, out, stage, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Map[In, Out, E any](mapOnSuccess func(ctx context.Context, r In) Out) Stage[In, Out, E] {
	return func(ctx context.Context, input Tracked[In, E]) Tracked[Out, E] {
		return Carry(input, solo.Map(ctx, input.Result, mapOnSuccess))
	}
}

func Bind[In, Out, E any](bindOnSuccess func(ctx context.Context, r In) expected.Expected[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, input Tracked[In, E]) Tracked[Out, E] {
		return Carry(input, solo.Switch(ctx, input.Result, bindOnSuccess))
	}
}

func Validate[T, E any](validate func(ctx context.Context, in T) (valid bool, reason E)) Stage[T, T, E] {
	return func(ctx context.Context, input Tracked[T, E]) Tracked[T, E] {
		return Carry(input, solo.AndValidate(ctx, input.Result, validate))
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Stage[In, Out, error] {
	return func(ctx context.Context, input Tracked[In, error]) Tracked[Out, error] {
		return Carry(input, solo.Try(ctx, input.Result, onTryExecute))
	}
}

func Tee[T, E any](sideEffect func(ctx context.Context, r T)) Stage[T, T, E] {
	return func(ctx context.Context, input Tracked[T, E]) Tracked[T, E] {
		input.Result.Match(func(r T) { sideEffect(ctx, r) }, nil)
		return input
	}
}

type FinallyHandlers[In, Out, E any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, e E) Out
}

// Finally collapses every item to an Out value, in arrival order.
func Finally[In, Out, E any](ctx context.Context, inputCh <-chan Tracked[In, E],
	handlers FinallyHandlers[In, Out, E]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in.Result, handlers.OnSuccess, handlers.OnError)

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
