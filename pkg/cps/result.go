package cps

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	pending   *Deferred[T]
	isSuccess bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

// FailWith is a failure that still carries the value that was in flight when
// the error occurred. The value is contextual, not authoritative; recovery
// operators may use it.
func FailWith[T any](err error, r T) Result[T] {
	return Result[T]{
		err:       err,
		result:    r,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

// Pending wraps a deferred value that has not settled yet.
func Pending[T any](d *Deferred[T]) Result[T] {
	return Result[T]{
		pending:   d,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

// FailFrom carries a failure across a value-type transition. The contextual
// value cannot cross the transition and is dropped.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		hasResult: false,
		id:        from.id,
	}
}

// Settle resolves a pending result, blocking until the deferred value
// settles or ctx is done. Settled results are returned unchanged.
func Settle[T any](ctx context.Context, in Result[T]) Result[T] {
	if in.pending == nil {
		return in
	}
	v, err := in.pending.Await(ctx)
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

func (r Result[T]) IsPending() bool {
	return r.pending != nil
}

func (r Result[T]) Deferred() *Deferred[T] {
	return r.pending
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess && r.pending == nil
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
