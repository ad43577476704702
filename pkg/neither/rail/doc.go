// Package rail contains ctx-first railway helpers over Result[T], an
// Either[error, T] stamped with an id and a creation time. Each helper runs
// its callback only on the success track and forwards failures and
// cancellations unchanged.
//
// Highlights:
// - Success/Fail/Cancel/FromEither/Forward: construct Result[T]
// - FromMo/ToMo: convert to and from samber/mo Result
// - Validate/AndValidate/ValidateAll: turn invalid input into a failure
// - Switch: flatMap to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee/FailOnError: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
// - Join: fold a list of steps, optionally stopping at the first failure
//
// A zap logger attached with WithLogger traces short-circuited steps.
package rail
