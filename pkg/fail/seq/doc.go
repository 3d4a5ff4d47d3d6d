// Package seq provides a minimal fluent Chain for synchronous composition
// over failure-aware values.
//
// It keeps the API surface very small:
// - Start/From: create a Chain from a value or an operation run through fail.Run
// - Then/Try: compose failure-returning or error-returning steps
// - Map: Then under a name that signals a non-failing transformation
// - Ensure: trigger side effects without changing the value
// - Finally/Out: reduce to a concrete value via handlers
//
// Every step is skipped once the current value is a failure, so a chain reads
// like straight-line code while still short-circuiting.
package seq
