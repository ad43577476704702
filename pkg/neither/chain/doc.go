// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of rail.Result[T] values.
//
// - Start/FromValue/FromEither/FromMaybe: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the value
// - Or/And: pick between alternative chains
// - RepeatUntil/While: loop a step on the success track
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Methods keep the value type; the package-level Then, ThenTry, Map and
// Finally change it.
package chain
