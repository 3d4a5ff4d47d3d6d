package seq

import (
	"github.com/ib-77/tagfail/pkg/fail"
)

// Chain threads a value through failure-aware steps.
type Chain struct {
	v any
}

func Start(v any) Chain {
	return Chain{v: v}
}

// From starts a chain from an operation executed through fail.Run, so a panic
// or rejected pending result enters the chain as a failure value.
func From(op func() any, catch ...fail.Catch) Chain {
	return Chain{v: fail.Run(op, catch...)}
}

// Out returns the current value, success or failure.
func (c Chain) Out() any {
	return c.v
}

// Then composes a step that may itself return a failure value.
func (c Chain) Then(step func(v any) any) Chain {
	if fail.Is(c.v) {
		return c
	}
	return Chain{v: step(c.v)}
}

// Try composes a step in the (value, error) convention; a non-nil error
// becomes a default failure carrying it.
func (c Chain) Try(step func(v any) (any, error)) Chain {
	if fail.Is(c.v) {
		return c
	}
	out, err := step(c.v)
	if err != nil {
		return Chain{v: fail.New(fail.Marker, err)}
	}
	return Chain{v: out}
}

// Map is Then under a name that documents intent: the step is a plain
// transformation not expected to fail. Mechanically the two are identical
// over untyped values, so a step that does return a failure value still
// short-circuits the rest.
func (c Chain) Map(step func(v any) any) Chain {
	if fail.Is(c.v) {
		return c
	}
	return Chain{v: step(c.v)}
}

// Ensure triggers side effects for the current state without changing it.
func (c Chain) Ensure(onOK func(v any), onFail func(v any)) Chain {
	if fail.Is(c.v) {
		if onFail != nil {
			onFail(c.v)
		}
		return c
	}
	if onOK != nil {
		onOK(c.v)
	}
	return c
}

// Finally collapses the chain to a final value via handlers. A nil handler
// passes the current value through.
func (c Chain) Finally(onOK func(v any) any, onFail func(v any) any) any {
	if fail.Is(c.v) {
		if onFail != nil {
			return onFail(c.v)
		}
		return c.v
	}
	if onOK != nil {
		return onOK(c.v)
	}
	return c.v
}
