package rail

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/neither/pkg/neither"
	"github.com/ib-77/neither/pkg/neither/either"
	"github.com/ib-77/neither/pkg/neither/try"
)

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) Result[T] {
	return AndValidate(ctx, Success(input), validate)
}

func AndValidate[T any](ctx context.Context, input Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) Result[T] {

	if !input.IsSuccess() {
		traceSkip(ctx, "validate", input)
		return input
	}

	if valid, errMsg := validate(ctx, input.Result()); !valid {
		return failFrom(input, errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every validator against input and joins the failures
// with errors.Join. With breakOnError it stops at the first failure. The
// failure keeps the id of input.
func ValidateAll[T any](ctx context.Context, input Result[T], breakOnError bool,
	validators ...func(ctx context.Context, in Result[T]) Result[T]) Result[T] {

	steps := make([]func(ctx context.Context, in Result[T]) Result[T], 0, len(validators))
	for _, validate := range validators {
		validate := validate
		steps = append(steps, func(ctx context.Context, _ Result[T]) Result[T] {
			return validate(ctx, input)
		})
	}

	var errs []error
	return Join(ctx, input, breakOnError,
		func(ctx context.Context, current Result[T]) Result[T] {
			either.Match(current.value,
				func(err error) { errs = append(errs, neither.GetErrors(err)...) },
				nil)

			if len(errs) == 0 {
				return current
			}
			return failFrom(input, errors.Join(errs...))
		},
		steps...,
	)
}

// Switch is flatMap on the success track.
func Switch[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Result[Out]) Result[Out] {

	if !input.IsSuccess() {
		traceSkip(ctx, "switch", input)
		return Forward[In, Out](input)
	}
	return onSuccess(ctx, input.Result())
}

func Map[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Out) Result[Out] {

	if !input.IsSuccess() {
		traceSkip(ctx, "map", input)
		return Forward[In, Out](input)
	}
	return Result[Out]{
		id:        input.id,
		createdAt: input.createdAt,
		value:     either.MapRight(input.value, func(r In) Out { return onSuccess(ctx, r) }),
	}
}

func Tee[T any](ctx context.Context, input Result[T],
	onSuccess func(ctx context.Context, r Result[T])) Result[T] {

	either.Match(input.value,
		func(error) { traceSkip(ctx, "tee", input) },
		func(T) { onSuccess(ctx, input) })
	return input
}

// DoubleTee runs exactly one of the handlers; it never skips.
func DoubleTee[T any](ctx context.Context, input Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) Result[T] {

	either.Match(input.value,
		func(err error) {
			if input.isCancel {
				onCancel(ctx, err)
				return
			}
			onError(ctx, err)
		},
		func(r T) { onSuccess(ctx, r) })
	return input
}

// Try calls onTryExecute on the success track. A returned error, or a panic
// carrying an error, becomes a failure; context cancellation errors become
// a cancel.
func Try[In, Out any](ctx context.Context, input Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Result[Out] {

	if !input.IsSuccess() {
		traceSkip(ctx, "try", input)
		return Forward[In, Out](input)
	}

	// with E = error every returned error is caught
	res, _ := try.Try[error](func() (Out, error) {
		return onTryExecute(ctx, input.Result())
	})

	if err := res.Left().Get(nil); err != nil && neither.IsCancellationError(err) {
		return Cancel[Out](err)
	}
	return FromEither(res)
}

func FailOnError[T any](ctx context.Context, input Result[T],
	maybeErr func(ctx context.Context, in T) error) Result[T] {

	if !input.IsSuccess() {
		traceSkip(ctx, "fail on error", input)
		return input
	}
	if err := maybeErr(ctx, input.Result()); err != nil {
		return failFrom(input, err)
	}
	return input
}

// Finally folds the result into a single value.
func Finally[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	return either.Fold(input.value,
		func(err error) Out {
			if input.isCancel {
				return onCancel(ctx, err)
			}
			return onError(ctx, err)
		},
		func(r In) Out { return onSuccess(ctx, r) })
}

// Join feeds input through every step, passing each outcome to concat.
// With breakOnError it stops at the first failure. A ctx that is already
// done returns input untouched; one that ends between steps gives a cancel
// wrapping ErrCancelled and the context error.
func Join[T any](ctx context.Context, input Result[T], breakOnError bool,
	concat func(ctx context.Context, current Result[T]) Result[T],
	steps ...func(ctx context.Context, in Result[T]) Result[T]) Result[T] {

	if len(steps) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	current := input
	for i, step := range steps {
		if i > 0 && ctx.Err() != nil {
			traceSkip(ctx, "join", current)
			return cancelFrom(current, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err()))
		}

		next := concat(ctx, step(ctx, current))
		if breakOnError && next.IsFailure() {
			traceSkip(ctx, "join", next)
			return next
		}
		current = next
	}
	return current
}
