// Package either implements Either[L, R], a value that is exactly one of a
// Left (failure or alternative) and a Right (success or primary) payload.
//
// Key operations:
// - Left/Right/LeftOf/RightOf: construct an Either
// - IsLeft/IsRight/IsPresent: query the live case
// - Left()/Right(): project one side into a maybe.Maybe
// - Join/Fold: collapse both cases into a single value
// - MapLeft/MapRight: transform one side, pass the other through
// - FlatMapLeft/FlatMapRight: chain functions returning Either
// - Match: run a side effect for the live case
// - FromResult/Unwrap: bridge to Go's (value, error) pairs
// - FromMo/ToMo: bridge to samber/mo Either
package either
