package op

import (
	"context"
	"sync"
	"time"

	"github.com/ib-77/cps/pkg/cps"
)

type debounceCall[T any] struct {
	in    cps.Result[T]
	next  cps.Cont[T]
	final cps.Cont[T]
	timer *time.Timer
}

// debouncer owns the pending timer and the waiting invocation's
// continuations. The state belongs to this operator instance alone.
type debouncer[T any] struct {
	wait time.Duration

	mu      sync.Mutex
	current *debounceCall[T]
}

// Debounce holds each value for d before continuing. A newer invocation
// supersedes the held one: the prior invocation's final is resolved
// synchronously with the superseded value, so no waiter is left hanging, and
// the timer restarts for the new value. Last write wins.
//
// The returned operator is a single stateful instance; reuse it, do not
// reconstruct it per invocation.
func Debounce[T any](d time.Duration) cps.Operator[T, T] {
	deb := &debouncer[T]{wait: d}
	return deb.invoke
}

func (d *debouncer[T]) invoke(ctx context.Context, in cps.Result[T], next, final cps.Cont[T]) {
	if !in.IsSuccess() {
		next(in)
		return
	}
	if final == nil {
		final = next
	}

	c := &debounceCall[T]{in: in, next: next, final: final}

	d.mu.Lock()
	prev := d.current
	c.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		if d.current == c {
			d.current = nil
		}
		d.mu.Unlock()
		c.next(c.in)
	})
	d.current = c
	d.mu.Unlock()

	// Stop reports whether the timer was still pending; if not, the fire
	// callback owns the prior call's delivery and nothing is resolved here.
	if prev != nil && prev.timer.Stop() {
		prev.final(prev.in)
	}
}
