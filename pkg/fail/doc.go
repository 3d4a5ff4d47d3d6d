// Package fail represents recoverable failures as ordinary return values
// instead of panics, distinguished from legitimate results by a tag that a
// caller can narrow on.
//
// Core pieces:
// - Marker: process-wide default tag, minted once at startup
// - New/Untagged: construct an immutable Failure value
// - Is: classify any value as failure or not, optionally narrowed by key
// - Run/Try: execute an operation and convert panics/errors to failures
// - Wrap: lift a function into one that returns failures instead of panicking
//
// Operations returning a pending result (promise.Thenable) are detected at
// runtime; Run then returns a new pending result whose rejection is converted
// to a Failure, so awaiting it never raises.
package fail
