package solo

import (
	"context"
	"errors"

	"github.com/ib-77/expected/pkg/expected"
)

func Succeed[T, E any](input T) expected.Expected[T, E] {
	return expected.Success[T, E](input)
}

func Fail[T, E any](e E) expected.Expected[T, E] {
	return expected.Fail[T](e)
}

func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, reason E)) expected.Expected[T, E] {
	return AndValidate(ctx, Succeed[T, E](input), validate)
}

func AndValidate[T, E any](ctx context.Context, input expected.Expected[T, E],
	validate func(ctx context.Context, in T) (valid bool, reason E)) expected.Expected[T, E] {

	if !input.IsSuccess() {
		return input
	}

	if isValid, reason := validate(ctx, input.MustValue()); !isValid {
		return expected.Fail[T](reason)
	}
	return input
}

// ValidateAll runs every validator against input and joins the errors of
// the failing ones. An input that already holds an error is returned as is.
func ValidateAll[T any](
	ctx context.Context,
	input expected.Expected[T, error],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in expected.Expected[T, error]) expected.Expected[T, error]) expected.Expected[T, error] {

	if input.IsError() {
		return input
	}

	var errs []error
	for _, validate := range inputsF {
		if ctx.Err() != nil {
			break
		}

		current := validate(ctx, input)
		if current.IsSuccess() {
			continue
		}

		errs = append(errs, current.MustError())
		if breakOnError {
			break
		}
	}

	if len(errs) == 0 {
		return input
	}
	return expected.Fail[T](errors.Join(errs...))
}

// Switch moves a success onto a step that may itself fail.
func Switch[In, Out, E any](ctx context.Context,
	input expected.Expected[In, E],
	onSuccess func(ctx context.Context, r In) expected.Expected[Out, E]) expected.Expected[Out, E] {

	return expected.Bind(input, func(r In) expected.Expected[Out, E] {
		return onSuccess(ctx, r)
	})
}

func Map[In, Out, E any](ctx context.Context,
	input expected.Expected[In, E],
	onSuccess func(ctx context.Context, r In) Out) expected.Expected[Out, E] {

	return expected.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Recover[T, E any](ctx context.Context,
	input expected.Expected[T, E],
	onError func(ctx context.Context, e E) expected.Expected[T, E]) expected.Expected[T, E] {

	return expected.OrElse(input, func(e E) expected.Expected[T, E] {
		return onError(ctx, e)
	})
}

func Tee[T, E any](ctx context.Context,
	input expected.Expected[T, E],
	onSuccess func(ctx context.Context, r expected.Expected[T, E])) expected.Expected[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input expected.Expected[T, E],
	condition func(ctx context.Context, r expected.Expected[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r expected.Expected[T, E])) expected.Expected[T, E] {

	if input.IsSuccess() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input expected.Expected[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, e E)) expected.Expected[T, E] {

	input.Match(
		func(r T) { onSuccess(ctx, r) },
		func(e E) { onError(ctx, e) },
	)

	return input
}

// DoubleMap maps a success to Out and reports an error to onError. The error
// itself stays on the error rail.
func DoubleMap[In, Out, E any](ctx context.Context, input expected.Expected[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, e E)) expected.Expected[Out, E] {

	if input.IsSuccess() {
		return expected.Success[Out, E](onSuccess(ctx, input.MustValue()))
	}

	e := input.MustError()
	onError(ctx, e)
	return expected.Fail[Out](e)
}

func Try[In, Out any](ctx context.Context, input expected.Expected[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) expected.Expected[Out, error] {

	return expected.Bind(input, func(r In) expected.Expected[Out, error] {
		out, err := onTryExecute(ctx, r)
		return expected.FromPair(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input expected.Expected[T, error],
	maybeErr func(ctx context.Context, in T) error) expected.Expected[T, error] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.MustValue()); err != nil {
			return expected.Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input expected.Expected[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, e E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.MustValue())
	}
	return onError(ctx, input.MustError())
}

// Join threads input through inputsF, passing each step's output to concat.
// With breakOnError it returns the first error concat produces.
func Join[T, E any](ctx context.Context,
	input expected.Expected[T, E],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current expected.Expected[T, E]) expected.Expected[T, E],
	inputsF ...func(ctx context.Context, in expected.Expected[T, E]) expected.Expected[T, E]) expected.Expected[T, E] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsError() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
