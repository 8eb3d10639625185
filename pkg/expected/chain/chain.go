package chain

import (
	"context"

	"github.com/ib-77/expected/pkg/expected"
	"github.com/ib-77/expected/pkg/expected/solo"
)

// Chain wraps an expected.Expected with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result expected.Expected[T, E]
}

// Start creates a new chain from an expected.Expected
func Start[T, E any](ctx context.Context, result expected.Expected[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return Start(ctx, expected.Success[T, E](value))
}

// FromError creates a new chain that already holds an error
func FromError[T, E any](ctx context.Context, e E) *Chain[T, E] {
	return Start(ctx, expected.Fail[T](e))
}

// Result returns the underlying expected.Expected
func (c *Chain[T, E]) Result() expected.Expected[T, E] {
	return c.result
}

// Then chains a function that returns expected.Expected[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) expected.Expected[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

func MapErr[T, E, F any](c *Chain[T, E], onError func(context.Context, E) F) *Chain[T, F] {
	return &Chain[T, F]{
		ctx: c.ctx,
		result: expected.MapError(c.result, func(e E) F {
			return onError(c.ctx, e)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result expected.Expected[T, E]) {
				onSuccess(ctx, result.MustValue())
			}),
	}
}

// OnError performs a side effect on the error rail only
func (c *Chain[T, E]) OnError(onError func(context.Context, E)) *Chain[T, E] {
	if c.result.IsError() {
		onError(c.ctx, c.result.MustError())
	}
	return c
}

// Recover lets onError replace an error with a new result
func (c *Chain[T, E]) Recover(onError func(context.Context, E) expected.Expected[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.Recover(c.ctx, c.result, onError),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
