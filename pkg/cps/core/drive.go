package core

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ib-77/cps/pkg/cps"
)

type DriveHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan cps.Result[In], outCh chan<- cps.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed cps.Result[In], outCh chan<- cps.Result[Out])
}

// Drive is a worker loop: it pulls results from inputCh, invokes op once per
// item, and forwards whatever the operator delivers to outCh. Both of the
// operator's continuations land in the same sink, so a short-circuit and a
// normal completion are indistinguishable to the consumer of outCh. Pending
// deliveries are settled before forwarding.
//
// Misbehaving operators that deliver more than once are capped at their
// first delivery.
func Drive[In, Out any](ctx context.Context, inputCh <-chan cps.Result[In], outCh chan<- cps.Result[Out],
	op cps.Operator[In, Out], handlers DriveHandlers[In, Out],
	onDelivered func(ctx context.Context, out cps.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			done := make(chan cps.Result[Out], 1)
			var fired atomic.Bool
			sink := func(out cps.Result[Out]) {
				if fired.CompareAndSwap(false, true) {
					done <- out
				}
			}

			op(ctx, in, sink, sink)

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				return
			case out := <-done:
				out = cps.Settle(ctx, out)

				select {
				case <-ctx.Done():
					return
				case outCh <- out:
					if onDelivered != nil {
						onDelivered(ctx, out)
					}
				}
			}
		}
	}
}
