package either

import (
	"errors"
	"fmt"

	"github.com/samber/mo"

	"github.com/ib-77/neither/pkg/neither/maybe"
)

// ErrNilLeft stands in for a Left that holds a nil error, so that a failure
// never reads back as a success.
var ErrNilLeft = errors.New("either: left holds a nil error")

// Either holds exactly one of a left or a right payload. The zero value is
// a Right carrying the zero R.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left builds a Left case. The right type is given explicitly and the left
// one is inferred: Left[int]("bad").
func Left[R, L any](l L) Either[L, R] {
	return Either[L, R]{left: l, isLeft: true}
}

// Right builds a Right case: Right[string](42).
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r}
}

func LeftOf[L, R any](l L) Either[L, R] {
	return Left[R](l)
}

func RightOf[L, R any](r R) Either[L, R] {
	return Right[L](r)
}

func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R]) IsRight() bool {
	return !e.isLeft
}

// IsPresent is true for a Right.
func (e Either[L, R]) IsPresent() bool {
	return !e.isLeft
}

// Unpack returns the right payload, the zero R for a Left.
func (e Either[L, R]) Unpack() R {
	return e.right
}

func (e Either[L, R]) Left() maybe.Maybe[L] {
	if e.isLeft {
		return maybe.Just(e.left)
	}
	return maybe.Nothing[L]()
}

func (e Either[L, R]) Right() maybe.Maybe[R] {
	if e.isLeft {
		return maybe.Nothing[R]()
	}
	return maybe.Just(e.right)
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isLeft {
		return Right[R](e.left)
	}
	return Left[L](e.right)
}

func (e Either[L, R]) String() string {
	if e.isLeft {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}

// Join returns whichever payload is live when both sides share a type.
func Join[T any](e Either[T, T]) T {
	if e.isLeft {
		return e.left
	}
	return e.right
}

func Fold[L, R, T any](e Either[L, R], leftCase func(L) T, rightCase func(R) T) T {
	if e.isLeft {
		return leftCase(e.left)
	}
	return rightCase(e.right)
}

func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if e.isLeft {
		return Left[R](f(e.left))
	}
	return Right[L2](e.right)
}

func MapRight[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if e.isLeft {
		return Left[R2](e.left)
	}
	return Right[L](f(e.right))
}

func FlatMapLeft[L, R, L2 any](e Either[L, R], f func(L) Either[L2, R]) Either[L2, R] {
	if e.isLeft {
		return f(e.left)
	}
	return Right[L2](e.right)
}

func FlatMapRight[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if e.isLeft {
		return Left[R2](e.left)
	}
	return f(e.right)
}

func Equal[L, R comparable](a, b Either[L, R]) bool {
	return EqualFunc(a, b,
		func(x, y L) bool { return x == y },
		func(x, y R) bool { return x == y })
}

// EqualFunc reports whether a and b hold the same case with payloads that
// the matching comparison considers equal. A Left never equals a Right.
func EqualFunc[L, R any](a, b Either[L, R], eqLeft func(x, y L) bool, eqRight func(x, y R) bool) bool {
	if a.isLeft != b.isLeft {
		return false
	}
	if a.isLeft {
		return eqLeft(a.left, b.left)
	}
	return eqRight(a.right, b.right)
}

// FromResult turns a (value, error) pair into an Either, Left when err is
// not nil.
func FromResult[R any](v R, err error) Either[error, R] {
	if err != nil {
		return Left[R](err)
	}
	return Right[error](v)
}

// Unwrap splits an Either[error, R] back into a (value, error) pair. A Left
// holding nil comes back as ErrNilLeft.
func Unwrap[R any](e Either[error, R]) (R, error) {
	if e.isLeft {
		var zero R
		if e.left == nil {
			return zero, ErrNilLeft
		}
		return zero, e.left
	}
	return e.right, nil
}

// Match runs exactly one of the two callbacks. Nil callbacks are skipped.
func Match[L, R any](e Either[L, R], onLeft func(L), onRight func(R)) {
	if e.isLeft {
		if onLeft != nil {
			onLeft(e.left)
		}
		return
	}
	if onRight != nil {
		onRight(e.right)
	}
}

func FromMo[L, R any](e mo.Either[L, R]) Either[L, R] {
	if l, ok := e.Left(); ok {
		return Left[R](l)
	}
	return Right[L](e.MustRight())
}

func ToMo[L, R any](e Either[L, R]) mo.Either[L, R] {
	if e.isLeft {
		return mo.Left[L, R](e.left)
	}
	return mo.Right[L, R](e.right)
}
