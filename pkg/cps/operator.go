package cps

import "context"

// Cont is a continuation slot. A well-behaved operator invokes exactly one
// of the two continuations it was handed, exactly once.
type Cont[T any] func(Result[T])

// Operator is the unit of composition. The incoming Result collapses the
// (error, value) pair of the upstream stage: a failure carries the error plus
// the value in flight, a success carries the payload. next continues normal
// forward flow; final skips every remaining stage and delivers straight to
// the pipeline's terminal consumer. A nil final defaults to next, so
// standalone invocation never hangs on an uncalled continuation.
//
// Operators that only pass failures along must forward them via next
// unchanged; recovering a failure is an operator's documented behavior, not
// a default. Expected failures are signaled through next, never by panicking.
type Operator[In, Out any] func(ctx context.Context, in Result[In], next, final Cont[Out])
