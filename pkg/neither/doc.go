// Package neither holds the pieces shared by the wrapper packages: the
// capability interfaces that lift works against and a few error helpers.
//
// Sub-packages:
// - maybe: optional value, Just/Nothing, Map/FlatMap
// - either: Left/Right disjoint union, Fold/Join and per-side maps
// - writer: value with an accumulated log combined by an associative append
// - lift: wrap plain functions so they short-circuit on absent arguments
// - try: convert one error type into a Left
// - rail, chain: ctx-first railway helpers built on Either[error, T]
package neither
