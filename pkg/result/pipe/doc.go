// Package pipe moves Results through concurrent, channel connected stages.
//
// Every item travels as a Car: a Result plus the identity it received when
// it boarded. Stages only ever transform the Result; the ID and creation time
// stay with the car until it reaches Finally.
//
// Common usage:
// - Load/LoadResults: put values or results on a channel of cars
// - Run/RunWith: drive a Stage over a channel with a number of workers
// - AndThen/Map/Fold/Tap/Validate/Inspect/Try/Async: lift result operations into stages
// - Finally: collapse cars into plain values
// - Unload/First: read values back off a channel
//
// Cancellation never becomes an Err. A car that cannot continue because the
// context ended, or because a stage failed outside the Result (a panic or a
// rejected future), is marked Stopped and passes every later stage
// untouched.
package pipe
