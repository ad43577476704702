package maybe

import (
	"fmt"

	"github.com/samber/mo"
)

// Maybe holds an optional payload. The zero value is absent.
type Maybe[T any] struct {
	value     T
	isPresent bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, isPresent: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr returns Nothing for a nil pointer and Just(*p) otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// FromOk adapts the comma-ok idiom, e.g. FromOk(m[key]).
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

// Get returns the payload, or other when absent.
func (m Maybe[T]) Get(other T) T {
	if m.isPresent {
		return m.value
	}
	return other
}

// UnsafeGet returns the payload and panics when m is absent.
func (m Maybe[T]) UnsafeGet() T {
	if !m.isPresent {
		panic("maybe: UnsafeGet called on an empty Maybe")
	}
	return m.value
}

func (m Maybe[T]) Value() (T, bool) {
	if !m.isPresent {
		var zero T
		return zero, false
	}
	return m.value, true
}

func (m Maybe[T]) Size() int {
	if m.isPresent {
		return 1
	}
	return 0
}

func (m Maybe[T]) Empty() bool {
	return !m.isPresent
}

func (m Maybe[T]) IsPresent() bool {
	return m.isPresent
}

// Unpack returns the raw payload, the zero T when absent.
func (m Maybe[T]) Unpack() T {
	return m.value
}

func (m Maybe[T]) String() string {
	if !m.isPresent {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.isPresent {
		return Nothing[U]()
	}
	return Just(f(m.value))
}

func FlatMap[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.isPresent {
		return Nothing[U]()
	}
	return f(m.value)
}

func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	return FlatMap(m, func(inner Maybe[T]) Maybe[T] { return inner })
}

// Or returns m when present, alt otherwise.
func Or[T any](m, alt Maybe[T]) Maybe[T] {
	if m.isPresent {
		return m
	}
	return alt
}

func Equal[T comparable](a, b Maybe[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b are both absent, or both present with
// payloads that eq considers equal.
func EqualFunc[T any](a, b Maybe[T], eq func(x, y T) bool) bool {
	if a.isPresent {
		return b.isPresent && eq(a.value, b.value)
	}
	return !b.isPresent
}

func FromOption[T any](o mo.Option[T]) Maybe[T] {
	v, ok := o.Get()
	return FromOk(v, ok)
}

func ToOption[T any](m Maybe[T]) mo.Option[T] {
	if !m.isPresent {
		return mo.None[T]()
	}
	return mo.Some(m.value)
}
