// Package writer implements Writer[A, W]: a value paired with a log, where
// the logs of sequential steps are combined by an associative append.
//
// Highlights:
// - New/Run/RunString/RunSlice: start a Writer with an initial log
// - Map: step producing a new value and a log entry appended to the log
// - MapValue: transform the value, keep the log
// - FlatMap: chain steps that return a Writer, appending their logs
// - Tell: append a log entry
// - Concat/AppendSlice/Sum, Log/Lines: ready-made append operations
package writer
