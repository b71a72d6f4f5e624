// Package option provides Option[T], a value that is either present (Some)
// or absent (None).
//
// The package is intentionally small: Result uses it as the return channel
// for Result.Ok and Result.Err projections.
package option
