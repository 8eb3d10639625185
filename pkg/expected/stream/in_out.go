package stream

import (
	"context"
	"sort"

	"github.com/ib-77/expected/pkg/expected"
)

type SourceHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnBreak     func(ctx context.Context, rest []T)
}

// Source emits every value as a tracked success, in order.
func Source[T, E any](ctx context.Context, values []T) <-chan Tracked[T, E] {
	return SourceWithHandlers[T, E](ctx, SourceHandlers[T]{}, values)
}

func SourceWithHandlers[T, E any](ctx context.Context, handlers SourceHandlers[T], values []T) <-chan Tracked[T, E] {
	results := make([]expected.Expected[T, E], len(values))
	for i, v := range values {
		results[i] = expected.Success[T, E](v)
	}

	return emit(ctx, results, func(ctx context.Context, from int) {
		if from == 0 && handlers.OnStartFail != nil {
			handlers.OnStartFail(ctx, values)
			return
		}
		if handlers.OnBreak != nil {
			handlers.OnBreak(ctx, values[from:])
		}
	})
}

// SourceResults emits results that may already hold errors.
func SourceResults[T, E any](ctx context.Context, results []expected.Expected[T, E]) <-chan Tracked[T, E] {
	return emit(ctx, results, nil)
}

func emit[T, E any](ctx context.Context, results []expected.Expected[T, E],
	onBreak func(ctx context.Context, from int)) <-chan Tracked[T, E] {

	in := make(chan Tracked[T, E])

	go func() {
		defer close(in)

		for i, r := range results {
			if ctx.Err() != nil {
				if onBreak != nil {
					onBreak(ctx, i)
				}
				return
			}

			select {
			case in <- Track(i, r):
			case <-ctx.Done():
				if onBreak != nil {
					onBreak(ctx, i)
				}
				return
			}
		}
	}()

	return in
}

// Collect drains out until it is closed or ctx is done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// CollectOrdered drains out and sorts the items by input position.
func CollectOrdered[T, E any](ctx context.Context, out <-chan Tracked[T, E]) []Tracked[T, E] {
	res := Collect(ctx, out)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Position < res[j].Position
	})
	return res
}

func FirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
