package chain

import (
	"context"

	"github.com/ib-77/neither/pkg/neither/either"
	"github.com/ib-77/neither/pkg/neither/maybe"
	"github.com/ib-77/neither/pkg/neither/rail"
)

type Chain[T any] struct {
	ctx context.Context
	res rail.Result[T]
}

func Start[T any](ctx context.Context, r rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rail.Success(v))
}

func FromEither[T any](ctx context.Context, e either.Either[error, T]) Chain[T] {
	return Start(ctx, rail.FromEither(e))
}

// FromMaybe starts a failed chain with errIfAbsent when m is absent.
func FromMaybe[T any](ctx context.Context, m maybe.Maybe[T], errIfAbsent error) Chain[T] {
	if v, ok := m.Value(); ok {
		return FromValue(ctx, v)
	}
	return Start(ctx, rail.Fail[T](errIfAbsent))
}

func (c Chain[T]) Result() rail.Result[T] {
	return c.res
}

func (c Chain[T]) with(r rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: r}
}

// Then composes functions that already return rail.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rail.Result[T]) Chain[T] {
	return c.with(rail.Switch(c.ctx, c.res, onSuccess))
}

// ThenTry composes functions that return (T, error), like repository calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.with(rail.Try(c.ctx, c.res, try))
}

func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.with(rail.Map(c.ctx, c.res, onSuccess))
}

// RepeatUntil runs onSuccess at least once and keeps going while until
// holds and the chain is on the success track.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rail.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Result()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rail.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for !c.res.IsFailure() && while(c.ctx, c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain. Without one, the first cancel
// wins over the first failure.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	var firstCancel, firstFail *Chain[T]

	for _, ch := range append([]Chain[T]{c}, alternatives...) {
		ch := ch
		switch {
		case ch.res.IsSuccess():
			return ch
		case ch.res.IsCancel():
			if firstCancel == nil {
				firstCancel = &ch
			}
		default:
			if firstFail == nil {
				firstFail = &ch
			}
		}
	}

	if firstCancel != nil {
		return *firstCancel
	}
	if firstFail != nil {
		return *firstFail
	}
	return c
}

// And returns the first failed chain, or the last one when all succeed.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return Chain[T]{ctx: c.ctx, res: last.res}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Result())
	}
	return c
}

func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return rail.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}

// Then switches the chain to a new value type.
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) rail.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: rail.Switch(c.ctx, c.res, onSuccess)}
}

func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: rail.Try(c.ctx, c.res, tryOnSuccess)}
}

func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: rail.Map(c.ctx, c.res, onSuccess)}
}

func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return rail.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}
