package cps

import (
	"context"
	"sync"
)

// Deferred is an explicit deferred value: created unsettled, settled exactly
// once by Resolve or Reject. Later settle calls are ignored.
type Deferred[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func NewDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{done: make(chan struct{})}
}

func Resolved[T any](v T) *Deferred[T] {
	d := NewDeferred[T]()
	d.Resolve(v)
	return d
}

func Rejected[T any](err error) *Deferred[T] {
	d := NewDeferred[T]()
	d.Reject(err)
	return d
}

func (d *Deferred[T]) Resolve(v T) {
	d.once.Do(func() {
		d.value = v
		close(d.done)
	})
}

func (d *Deferred[T]) Reject(err error) {
	d.once.Do(func() {
		d.err = err
		close(d.done)
	})
}

func (d *Deferred[T]) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Await blocks until the deferred settles or ctx is done, whichever comes
// first. Context expiry is reported as a rejection.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
