package try

import (
	"errors"

	"github.com/ib-77/neither/pkg/neither/either"
)

// Try calls f. A nil error gives Right(v). An error matching E (see
// errors.As) gives Left(e). Any other error is not caught and comes back as
// the second result, in which case the Either is meaningless.
//
// A panic whose value is an error matching E is recovered into a Left;
// other panics keep unwinding.
func Try[E error, R any](f func() (R, error)) (res either.Either[E, R], err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := match[E](r)
			if !ok {
				panic(r)
			}
			res, err = either.Left[R](e), nil
		}
	}()

	v, ferr := f()
	if ferr == nil {
		return either.Right[E](v), nil
	}
	if e, ok := match[E](ferr); ok {
		return either.Left[R](e), nil
	}
	return res, ferr
}

// Catch calls f and turns a panic carrying an E into a Left.
func Catch[E error, R any](f func() R) either.Either[E, R] {
	res, _ := Try[E](func() (R, error) { return f(), nil })
	return res
}

func Func[E error, A, R any](f func(A) (R, error)) func(A) (either.Either[E, R], error) {
	return func(a A) (either.Either[E, R], error) {
		return Try[E](func() (R, error) { return f(a) })
	}
}

func match[E error](v any) (E, bool) {
	var target E
	err, ok := v.(error)
	if !ok || err == nil {
		return target, false
	}
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}
