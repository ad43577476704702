// Package maybe implements Maybe[T], a value that is either present with a
// payload or absent.
//
// Highlights:
// - Just/Nothing/FromPtr/FromOk: construct a Maybe[T]
// - Get/Value/UnsafeGet: read the payload with a fallback, comma-ok or panic
// - Map: transform a present payload, absent stays absent
// - FlatMap/Flatten: chain functions returning Maybe, collapsing nesting
// - Or: pick the first present value
// - Equal/EqualFunc: compare two Maybe values
// - FromOption/ToOption: bridge to samber/mo Option
package maybe
