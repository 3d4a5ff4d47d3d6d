package fail

// Wrap lifts fn into a function with the same argument forwarding whose
// panics (and pending-result rejections) come back as failure values.
// wrapped(args...) behaves as Run(func() any { return fn(args...) }, catch...).
func Wrap(fn func(args ...any) any, catch ...Catch) func(args ...any) any {
	return func(args ...any) any {
		return Run(func() any { return fn(args...) }, catch...)
	}
}

// Typed variants below keep the parameter list of fn; the result widens to
// any because a failure value may stand in for R.

func Wrap0[R any](fn func() R, catch ...Catch) func() any {
	return func() any {
		return Run(func() any { return fn() }, catch...)
	}
}

func Wrap1[A any, R any](fn func(A) R, catch ...Catch) func(A) any {
	return func(a A) any {
		return Run(func() any { return fn(a) }, catch...)
	}
}

func Wrap2[A any, B any, R any](fn func(A, B) R, catch ...Catch) func(A, B) any {
	return func(a A, b B) any {
		return Run(func() any { return fn(a, b) }, catch...)
	}
}
