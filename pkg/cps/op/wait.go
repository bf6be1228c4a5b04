package op

import (
	"context"
	"time"

	"github.com/ib-77/cps/pkg/cps"
)

// Wait holds the value for d and then continues. The caller returns
// immediately; the continuation fires from the timer goroutine.
func Wait[T any](d time.Duration) cps.Operator[T, T] {
	return func(ctx context.Context, in cps.Result[T], next, final cps.Cont[T]) {
		if !in.IsSuccess() {
			next(in)
			return
		}

		time.AfterFunc(d, func() {
			next(in)
		})
	}
}

// Defer runs produce on a fresh goroutine and hands the pipeline a pending
// result immediately; the composer settles it before the following stage.
func Defer[In, Out any](produce func(ctx context.Context, r In) (Out, error)) cps.Operator[In, Out] {
	return func(ctx context.Context, in cps.Result[In], next, final cps.Cont[Out]) {
		if !in.IsSuccess() {
			next(cps.FailFrom[In, Out](in))
			return
		}

		d := cps.NewDeferred[Out]()
		go func() {
			out, err := produce(ctx, in.Result())
			if err != nil {
				d.Reject(err)
				return
			}
			d.Resolve(out)
		}()

		next(cps.Pending(d))
	}
}
