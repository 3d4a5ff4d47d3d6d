package promise

import (
	"context"
	"fmt"
	"sync"
)

// Thenable is the duck-typed contract the fail adapters detect at runtime:
// anything with a Then is treated as a pending result. Exactly one of the two
// continuations must eventually be called, once.
type Thenable interface {
	Then(onFulfilled func(v any), onRejected func(reason any))
}

// Promise is a settle-once pending result. The zero value is not usable;
// create one with Pending, Resolved, Rejected or Go.
type Promise struct {
	once     sync.Once
	done     chan struct{}
	value    any
	reason   any
	rejected bool
}

var _ Thenable = (*Promise)(nil)

func Pending() *Promise {
	return &Promise{done: make(chan struct{})}
}

func Resolved(v any) *Promise {
	p := Pending()
	p.Resolve(v)
	return p
}

func Rejected(reason any) *Promise {
	p := Pending()
	p.Reject(reason)
	return p
}

// Go runs op on its own goroutine: a normal return fulfills, a panic rejects
// with the panic value.
func Go(op func() any) *Promise {
	p := Pending()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.Reject(r)
			}
		}()
		p.Resolve(op())
	}()
	return p
}

// Resolve fulfills the promise with v. Settling after the first settle is a
// no-op.
func (p *Promise) Resolve(v any) {
	p.once.Do(func() {
		p.value = v
		close(p.done)
	})
}

// Reject settles the promise with a rejection reason. Settling after the
// first settle is a no-op.
func (p *Promise) Reject(reason any) {
	p.once.Do(func() {
		p.reason = reason
		p.rejected = true
		close(p.done)
	})
}

// Then registers continuations that run on their own goroutine once the
// promise settles. Either callback may be nil.
func (p *Promise) Then(onFulfilled func(v any), onRejected func(reason any)) {
	go func() {
		<-p.done
		if p.rejected {
			if onRejected != nil {
				onRejected(p.reason)
			}
			return
		}
		if onFulfilled != nil {
			onFulfilled(p.value)
		}
	}()
}

// Settled is closed once the promise is fulfilled or rejected.
func (p *Promise) Settled() <-chan struct{} {
	return p.done
}

// Await blocks until the promise settles or ctx is done. A rejection comes
// back as *Rejection; ctx expiry as ctx.Err().
func (p *Promise) Await(ctx context.Context) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.done:
		if p.rejected {
			return nil, &Rejection{Reason: p.reason}
		}
		return p.value, nil
	}
}

// Rejection carries the reason of a rejected promise through Await.
type Rejection struct {
	Reason any
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("promise rejected: %v", r.Reason)
}
