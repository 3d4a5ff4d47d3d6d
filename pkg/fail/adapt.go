package fail

import (
	"github.com/ib-77/tagfail/pkg/fail/promise"
)

// Catch converts a trapped panic value or rejection reason into a Failure.
// A Catch must return a failure value; returning anything else breaks the
// caller's narrowing.
type Catch func(reason any) Failure

// Run invokes op and guarantees the outcome is either op's own value or a
// failure value; a panic never escapes.
//
// - op returns a plain value: returned unchanged.
// - op returns a promise.Thenable: Run returns a new *promise.Promise that
//   resolves to the fulfillment value, or to the converted rejection reason.
//   The new promise never rejects.
// - op panics: the panic value is converted via catch, or New(Marker, reason)
//   when no catch is given.
//
// Run does not cancel an in-flight pending result; the caller owns whatever
// cancellation the underlying operation supports.
func Run(op func() any, catch ...Catch) (out any) {
	c := pickCatch(catch)

	defer func() {
		if r := recover(); r != nil {
			out = c(r)
		}
	}()

	v := op()

	// A typed-nil pending result has nothing to settle; registering a
	// continuation on it would crash the goroutine. Let it pass through.
	if th, ok := v.(promise.Thenable); ok && !IsNil(v) {
		settled := promise.Pending()
		th.Then(
			func(val any) { settled.Resolve(val) },
			func(reason any) { settled.Resolve(c(reason)) },
		)
		return settled
	}
	return v
}

// Try bridges the (T, error) convention: a non-nil error is converted exactly
// like a trapped panic value, a nil error yields the plain T.
func Try[T any](op func() (T, error), catch ...Catch) (out any) {
	c := pickCatch(catch)

	defer func() {
		if r := recover(); r != nil {
			out = c(r)
		}
	}()

	v, err := op()
	if err != nil {
		return c(err)
	}
	return v
}

func pickCatch(catch []Catch) Catch {
	if len(catch) > 0 && catch[0] != nil {
		return catch[0]
	}
	return func(reason any) Failure {
		return New(Marker, reason)
	}
}
