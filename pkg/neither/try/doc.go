// Package try converts one kind of failure into a tagged Left.
//
// - Try: call a (R, error) function; errors matching E become Left, other
//   errors are returned untouched, panics carrying an E are recovered
// - Catch: same for functions that only fail by panicking
// - Func: reusable one-argument form of Try
package try
