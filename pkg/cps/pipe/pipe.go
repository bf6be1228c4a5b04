package pipe

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ib-77/cps/pkg/cps"
	"github.com/ib-77/cps/pkg/cps/core"
)

// Pipe composes stages into a single operator over one value type. The
// composed operator satisfies the operator contract itself, so pipelines
// nest.
//
// Execution rules:
//   - an already-failed input is forwarded to next; no stage runs
//   - each stage's success output feeds the following stage
//   - the caller's final is threaded unchanged into every stage, so any
//     stage can short-circuit straight to the terminal consumer
//   - a pending output is settled before the following stage runs; a
//     rejection counts as the producing stage's error, with the stage's
//     input value as context
//   - a stage that panics counts as having signaled that error via next,
//     with its input value as context
//   - stage errors are delivered to next by default; core.WithErrorRouting
//     redirects them to final
//   - composing zero stages yields the identity operator
func Pipe[T any](stages ...cps.Operator[T, T]) cps.Operator[T, T] {
	return func(ctx context.Context, in cps.Result[T], next, final cps.Cont[T]) {
		if final == nil {
			final = next
		}

		if in.IsFailure() {
			next(in)
			return
		}

		f := &frame[T]{
			ctx:     ctx,
			stages:  stages,
			next:    next,
			final:   final,
			routing: core.GetErrorRouting(ctx, core.RouteToNext),
		}

		in = cps.Settle(ctx, in)
		if in.IsFailure() {
			f.fail(in)
			return
		}
		f.run(0, in.Result())
	}
}

// Apply invokes an operator standalone, defaulting final to next.
func Apply[In, Out any](ctx context.Context, op cps.Operator[In, Out], in cps.Result[In], next cps.Cont[Out]) {
	op(ctx, in, next, next)
}

// frame is the per-invocation state: the stage cursor plus the continuations
// resolved at entry. It lives until one of them is invoked.
type frame[T any] struct {
	ctx     context.Context
	stages  []cps.Operator[T, T]
	next    cps.Cont[T]
	final   cps.Cont[T]
	routing core.Routing
}

func (f *frame[T]) run(i int, v T) {
	if i == len(f.stages) {
		f.next(cps.Success(v))
		return
	}

	// one delivery per stage invocation, shared across both continuations
	var fired atomic.Bool
	once := func(c cps.Cont[T]) cps.Cont[T] {
		return func(out cps.Result[T]) {
			if fired.CompareAndSwap(false, true) {
				c(out)
			}
		}
	}

	advance := once(func(out cps.Result[T]) {
		switch {
		case out.IsFailure():
			f.fail(out)
		case out.IsPending():
			res, err := out.Deferred().Await(f.ctx)
			if err != nil {
				f.fail(cps.FailWith(err, v))
				return
			}
			f.run(i+1, res)
		default:
			f.run(i+1, out.Result())
		}
	})
	shortcut := once(f.final)

	func() {
		defer func() {
			if r := recover(); r != nil {
				if fired.CompareAndSwap(false, true) {
					f.fail(cps.FailWith(recoveredError(r), v))
				}
			}
		}()
		f.stages[i](f.ctx, cps.Success(v), advance, shortcut)
	}()
}

func (f *frame[T]) fail(out cps.Result[T]) {
	if f.routing == core.RouteToFinal {
		f.final(out)
		return
	}
	f.next(out)
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("operator panic: %v", r)
}
