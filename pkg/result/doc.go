// Package result contains Result[T, E], a closed sum of a success value (Ok)
// and an error value (Err), together with its combinator algebra.
//
// Highlights:
// - Ok/Err: construct a Result; Of/Try/FromPair: capture a failure as Err
// - IsOk/IsErr, Match/When: inspect or collapse a Result
// - Map/MapErr/MapOr/MapOrElse/Fold: transform one or both channels
// - And/AndThen/Or/OrElse: chain fallible steps with short-circuiting
// - Expect/Unwrap and friends: extract a payload, panicking on the wrong variant
// - *Async variants: the same contracts with future-returning callbacks
//
// Combinators that change a type parameter are package functions; the rest
// are methods. Every combinator other than the Expect/Unwrap family is total
// and never panics because of the variant it is called on. Panics raised by
// callbacks are not captured.
package result
