package adapt

import (
	"context"

	"github.com/ib-77/cps/pkg/cps"
)

// Fire converts an operator into a fire-and-forget unary function: whatever
// the operator delivers, on either continuation, is discarded.
func Fire[In, Out any](op cps.Operator[In, Out]) func(ctx context.Context, v In) {
	return func(ctx context.Context, v In) {
		sink := func(cps.Result[Out]) {}
		op(ctx, cps.Success(v), sink, sink)
	}
}

// Future converts an operator into a request/response function returning a
// deferred value: the operator's delivery resolves it on success and rejects
// it on error. If the operator never delivers, the deferred never settles;
// bound the wait with the ctx passed to Await.
func Future[In, Out any](op cps.Operator[In, Out]) func(ctx context.Context, v In) *cps.Deferred[Out] {
	return func(ctx context.Context, v In) *cps.Deferred[Out] {
		d := cps.NewDeferred[Out]()
		sink := func(out cps.Result[Out]) {
			if out.IsPending() {
				go func() {
					if v, err := out.Deferred().Await(ctx); err != nil {
						d.Reject(err)
					} else {
						d.Resolve(v)
					}
				}()
				return
			}
			if out.IsFailure() {
				d.Reject(out.Err())
				return
			}
			d.Resolve(out.Result())
		}
		op(ctx, cps.Success(v), sink, sink)
		return d
	}
}

// Sync converts an operator into a blocking unary call.
func Sync[In, Out any](op cps.Operator[In, Out]) func(ctx context.Context, v In) (Out, error) {
	future := Future(op)
	return func(ctx context.Context, v In) (Out, error) {
		return future(ctx, v).Await(ctx)
	}
}
