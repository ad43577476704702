package rail

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/ib-77/neither/pkg/neither/either"
	"github.com/ib-77/neither/pkg/neither/maybe"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     either.Either[error, T]
	isCancel  bool
}

func newResult[T any](value either.Either[error, T], isCancel bool) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		isCancel:  isCancel,
	}
}

func Success[T any](r T) Result[T] {
	return newResult(either.Right[error](r), false)
}

// Fail and Cancel replace a nil err with either.ErrNilLeft.
func Fail[T any](err error) Result[T] {
	return newResult(either.Left[T](nonNil(err)), false)
}

func Cancel[T any](err error) Result[T] {
	return newResult(either.Left[T](nonNil(err)), true)
}

func FromEither[T any](e either.Either[error, T]) Result[T] {
	return newResult(either.MapLeft(e, nonNil), false)
}

func FromMo[T any](r mo.Result[T]) Result[T] {
	v, err := r.Get()
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

func ToMo[T any](r Result[T]) mo.Result[T] {
	v, err := either.Unwrap(r.value)
	if err != nil {
		return mo.Err[T](err)
	}
	return mo.Ok(v)
}

func nonNil(err error) error {
	if err == nil {
		return either.ErrNilLeft
	}
	return err
}

// failFrom builds a failure that keeps the id and creation time of from.
func failFrom[T any](from Result[T], err error) Result[T] {
	return Result[T]{
		id:        from.id,
		createdAt: from.createdAt,
		value:     either.Left[T](nonNil(err)),
	}
}

func cancelFrom[T any](from Result[T], err error) Result[T] {
	r := failFrom(from, err)
	r.isCancel = true
	return r
}

// Forward moves a failed or cancelled result to another value type keeping
// its id and creation time. A successful input becomes a failure.
func Forward[In, Out any](from Result[In]) Result[Out] {
	err := from.Err()
	if err == nil {
		err = ErrNotFailed
	}
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		value:     either.Left[Out](err),
		isCancel:  from.isCancel,
	}
}

func (r Result[T]) Result() T {
	return r.value.Unpack()
}

func (r Result[T]) Err() error {
	return r.value.Left().Get(nil)
}

func (r Result[T]) IsSuccess() bool {
	return r.value.IsRight()
}

// IsFailure is true for failures and cancellations.
func (r Result[T]) IsFailure() bool {
	return r.value.IsLeft()
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Either() either.Either[error, T] {
	return r.value
}

func (r Result[T]) Maybe() maybe.Maybe[T] {
	return r.value.Right()
}
