package chain

import (
	"context"
	"time"

	"github.com/ib-77/cps/pkg/cps"
	"github.com/ib-77/cps/pkg/cps/adapt"
	"github.com/ib-77/cps/pkg/cps/op"
	"github.com/ib-77/cps/pkg/cps/pipe"
)

// Chain accumulates same-type stages and builds a pipeline on demand.
// Every step returns a new Chain; the receiver is untouched.
type Chain[T any] struct {
	stages []cps.Operator[T, T]
}

// New creates an empty chain
func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

// From creates a chain over existing operators
func From[T any](stages ...cps.Operator[T, T]) *Chain[T] {
	return &Chain[T]{stages: stages}
}

// Then appends a raw operator
func (c *Chain[T]) Then(o cps.Operator[T, T]) *Chain[T] {
	stages := make([]cps.Operator[T, T], len(c.stages), len(c.stages)+1)
	copy(stages, c.stages)
	return &Chain[T]{stages: append(stages, o)}
}

// Map appends a pure transformation
func (c *Chain[T]) Map(onSuccess func(ctx context.Context, r T) T) *Chain[T] {
	return c.Then(op.Map(onSuccess))
}

// Try appends a function that returns (T, error)
func (c *Chain[T]) Try(onTryExecute func(ctx context.Context, r T) (T, error)) *Chain[T] {
	return c.Then(op.Try(onTryExecute))
}

// Validate appends a validation producing failure on invalid input
func (c *Chain[T]) Validate(validate func(ctx context.Context, in T) (valid bool, errMsg string)) *Chain[T] {
	return c.Then(op.Validate(validate))
}

// Filter appends a predicate; non-matching values short-circuit
func (c *Chain[T]) Filter(pred func(ctx context.Context, r T) bool) *Chain[T] {
	return c.Then(op.Filter(pred))
}

// Tee appends a success-only side effect
func (c *Chain[T]) Tee(sideEffect func(ctx context.Context, r T)) *Chain[T] {
	return c.Then(op.Tee(sideEffect))
}

// Catch appends an error-recovery step
func (c *Chain[T]) Catch(handle func(ctx context.Context, err error, last T) cps.Result[T]) *Chain[T] {
	return c.Then(op.CatchError(handle))
}

// Wait appends a timer delay
func (c *Chain[T]) Wait(d time.Duration) *Chain[T] {
	return c.Then(op.Wait[T](d))
}

// Debounce appends a stateful last-write-wins hold
func (c *Chain[T]) Debounce(d time.Duration) *Chain[T] {
	return c.Then(op.Debounce[T](d))
}

// Retry appends an operator wrapped with error retry
func (c *Chain[T]) Retry(attempts int, inner cps.Operator[T, T]) *Chain[T] {
	return c.Then(op.Retry(attempts, inner))
}

// Operator builds the composed pipeline
func (c *Chain[T]) Operator() cps.Operator[T, T] {
	return pipe.Pipe(c.stages...)
}

// Run executes the pipeline and blocks for the outcome
func (c *Chain[T]) Run(ctx context.Context, v T) (T, error) {
	return adapt.Sync(c.Operator())(ctx, v)
}

// Fire executes the pipeline and discards the outcome
func (c *Chain[T]) Fire(ctx context.Context, v T) {
	adapt.Fire(c.Operator())(ctx, v)
}
