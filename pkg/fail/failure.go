package fail

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Failure is the value form of a recoverable error. It is immutable once
// constructed and carries a tag plus an optional context payload.
type Failure struct {
	tag       Tag
	ctx       any
	hasCtx    bool
	id        uuid.UUID
	createdAt time.Time
}

// New builds a Failure tagged with key, optionally carrying the first ctx
// value as context.
//
// Known limitation, kept for compatibility: an empty key falls back to
// Marker, and a context equal to its type's zero value (or a typed nil) is
// treated as not supplied.
func New(key Tag, ctx ...any) Failure {
	f := Failure{
		tag:       Marker,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
	if key != "" {
		f.tag = key
	}
	if len(ctx) > 0 && !IsAbsent(ctx[0]) {
		f.ctx = ctx[0]
		f.hasCtx = true
	}
	return f
}

// Untagged builds a default Failure whose tag is Marker, with no context.
func Untagged() Failure {
	return New("")
}

// FailTag returns the discriminant; it also satisfies Tagged.
func (f Failure) FailTag() Tag {
	return f.tag
}

// Ctx returns the context payload, or nil when none was supplied.
func (f Failure) Ctx() any {
	return f.ctx
}

func (f Failure) HasCtx() bool {
	return f.hasCtx
}

func (f Failure) IsDefault() bool {
	return f.tag == Marker
}

func (f Failure) Id() uuid.UUID {
	return f.id
}

// CreatedAt time creation (UTC)
func (f Failure) CreatedAt() time.Time {
	return f.createdAt
}

// Error lets a Failure cross boundaries that speak error. Recognition should
// still go through Is, not through errors.As.
func (f Failure) Error() string {
	head := "failure"
	if f.tag != Marker && f.tag != "" {
		head = fmt.Sprintf("failure [%s]", f.tag)
	}
	if f.hasCtx {
		return fmt.Sprintf("%s: %v", head, f.ctx)
	}
	return head
}

var _ Tagged = Failure{}
var _ error = Failure{}
