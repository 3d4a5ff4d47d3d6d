package tests

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/ib-77/tagfail/pkg/fail"
	"github.com/ib-77/tagfail/pkg/fail/promise"
	"github.com/ib-77/tagfail/pkg/fail/seq"

	"github.com/stretchr/testify/assert"
)

const (
	tagParse   fail.Tag = "PARSE"
	tagRange   fail.Tag = "RANGE"
	tagNetwork fail.Tag = "NETWORK"
)

// parsePort mimics application code: it panics on malformed input and keys
// range problems deliberately through a failure value.
func parsePort(raw string) any {
	n, err := strconv.Atoi(raw)
	if err != nil {
		panic(err)
	}
	if n < 1 || n > 65535 {
		return fail.New(tagRange, n)
	}
	return n
}

func handle(v any) string {
	switch {
	case fail.Is(v, tagParse):
		return "bad input"
	case fail.Is(v, tagRange):
		return fmt.Sprintf("out of range: %v", v.(fail.Failure).Ctx())
	case fail.Is(v):
		return "unknown failure"
	default:
		return fmt.Sprintf("port %d", v)
	}
}

// TestPortPipeline exercises construct, narrow, run and wrap together the way
// caller code composes them.
func TestPortPipeline(t *testing.T) {
	parse := fail.Wrap1(parsePort, func(reason any) fail.Failure {
		return fail.New(tagParse, reason)
	})

	assert.Equal(t, "port 8080", handle(parse("8080")))
	assert.Equal(t, "bad input", handle(parse("not-a-port")))
	assert.Equal(t, "out of range: 70000", handle(parse("70000")))
}

func TestKeyedNarrowingIsExclusive(t *testing.T) {
	v := fail.Run(func() any { panic("boom") }, func(reason any) fail.Failure {
		return fail.New(tagNetwork, reason)
	})

	assert.True(t, fail.Is(v))
	assert.True(t, fail.Is(v, tagNetwork))
	assert.False(t, fail.Is(v, tagParse))
	assert.False(t, fail.Is(v, fail.Marker))
}

func TestAsyncAdapterEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fetch := func(ok bool) any {
		return promise.Go(func() any {
			if !ok {
				panic("connection reset")
			}
			return "payload"
		})
	}

	out := fail.Run(func() any { return fetch(true) })
	p, isPromise := out.(*promise.Promise)
	if !isPromise {
		t.Fatalf("expected a pending result, got: %T", out)
	}
	v, err := p.Await(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "payload", v)

	out = fail.Run(func() any { return fetch(false) }, func(reason any) fail.Failure {
		return fail.New(tagNetwork, reason)
	})
	v, err = out.(*promise.Promise).Await(ctx)
	assert.NoError(t, err)
	assert.True(t, fail.Is(v, tagNetwork))
	assert.Equal(t, "connection reset", v.(fail.Failure).Ctx())
}

func TestSeqComposesWithAdapters(t *testing.T) {
	out := seq.From(func() any { return "21" }).
		Try(func(v any) (any, error) { return strconv.Atoi(v.(string)) }).
		Map(func(v any) any { return v.(int) * 2 }).
		Finally(
			func(v any) any { return fmt.Sprintf("ok:%d", v) },
			func(v any) any { return "failed" },
		)

	assert.Equal(t, "ok:42", out)

	out = seq.From(func() any { panic("exploded") }).
		Map(func(v any) any { return "unreachable" }).
		Finally(
			func(v any) any { return "ok" },
			func(v any) any { return fmt.Sprintf("failed: %v", v.(fail.Failure).Ctx()) },
		)

	assert.Equal(t, "failed: exploded", out)
}
