// Package chain provides a fluent, context-carrying Chain[T, E] for
// synchronous composition of Result values.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then/Map/Validate: continue on Ok, skipped after an Err
// - Recover: continue on Err, skipped after an Ok
// - Ensure: side effects without changing the result
// - RepeatUntil/While: loop a step while the chain stays Ok
// - Or/And: pick between chains
// - Finally: collapse the chain via Ok, Err and cancel handlers
//
// Every step first checks the chain's context. Once it is done the chain
// stops and reports the context error from Result instead of converting it
// into an Err.
package chain
