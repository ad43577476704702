package lift

import (
	"github.com/ib-77/neither/pkg/neither"
	"github.com/ib-77/neither/pkg/neither/maybe"
)

// Value is a plain, always present argument.
type Value[T any] struct {
	v T
}

func Pure[T any](v T) Value[T] {
	return Value[T]{v: v}
}

func (v Value[T]) IsPresent() bool {
	return true
}

func (v Value[T]) Unpack() T {
	return v.v
}

// All reports whether every x is present. It is true for no arguments.
func All(xs ...neither.Present) bool {
	for _, x := range xs {
		if neither.IsNil(x) || !x.IsPresent() {
			return false
		}
	}
	return true
}

// Any reports whether at least one x is present. It is false for no
// arguments.
func Any(xs ...neither.Present) bool {
	for _, x := range xs {
		if !neither.IsNil(x) && x.IsPresent() {
			return true
		}
	}
	return false
}

func Lift1[A, R any](f func(A) R) func(neither.Unpacker[A]) maybe.Maybe[R] {
	return func(a neither.Unpacker[A]) maybe.Maybe[R] {
		if !All(a) {
			return maybe.Nothing[R]()
		}
		return maybe.Just(f(a.Unpack()))
	}
}

func Lift2[A, B, R any](f func(A, B) R) func(neither.Unpacker[A], neither.Unpacker[B]) maybe.Maybe[R] {
	return func(a neither.Unpacker[A], b neither.Unpacker[B]) maybe.Maybe[R] {
		if !All(a, b) {
			return maybe.Nothing[R]()
		}
		return maybe.Just(f(a.Unpack(), b.Unpack()))
	}
}

func Lift3[A, B, C, R any](f func(A, B, C) R) func(neither.Unpacker[A], neither.Unpacker[B],
	neither.Unpacker[C]) maybe.Maybe[R] {
	return func(a neither.Unpacker[A], b neither.Unpacker[B], c neither.Unpacker[C]) maybe.Maybe[R] {
		if !All(a, b, c) {
			return maybe.Nothing[R]()
		}
		return maybe.Just(f(a.Unpack(), b.Unpack(), c.Unpack()))
	}
}

func Lift4[A, B, C, D, R any](f func(A, B, C, D) R) func(neither.Unpacker[A], neither.Unpacker[B],
	neither.Unpacker[C], neither.Unpacker[D]) maybe.Maybe[R] {
	return func(a neither.Unpacker[A], b neither.Unpacker[B], c neither.Unpacker[C],
		d neither.Unpacker[D]) maybe.Maybe[R] {
		if !All(a, b, c, d) {
			return maybe.Nothing[R]()
		}
		return maybe.Just(f(a.Unpack(), b.Unpack(), c.Unpack(), d.Unpack()))
	}
}

// FlatLift2 lifts a function that already returns a Maybe without nesting
// the result.
func FlatLift2[A, B, R any](f func(A, B) maybe.Maybe[R]) func(neither.Unpacker[A],
	neither.Unpacker[B]) maybe.Maybe[R] {
	return func(a neither.Unpacker[A], b neither.Unpacker[B]) maybe.Maybe[R] {
		return maybe.Flatten(Lift2(f)(a, b))
	}
}
