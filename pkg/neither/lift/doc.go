// Package lift wraps ordinary functions so they operate on wrapped
// arguments. A lifted function returns Nothing as soon as one argument is
// absent (a Nothing or a Left) and calls the original function otherwise.
//
// Arguments are neither.Unpacker values: maybe.Maybe, either.Either (its
// Right side) and plain values wrapped with Pure.
package lift
