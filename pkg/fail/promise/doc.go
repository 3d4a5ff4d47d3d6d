// Package promise provides the minimal pending-result type the fail adapters
// branch on. A Promise settles exactly once, on fulfillment or rejection, and
// registered continuations run on their own goroutine once it does.
//
// Common usage:
// - Go: run an operation on a goroutine, converting a panic into a rejection
// - Pending/Resolve/Reject: settle by hand
// - Then: register fulfillment/rejection continuations
// - Await: block until settled, honoring context cancellation
//
// There is no cancellation of the producing operation itself; Await only
// stops waiting.
package promise
