package op

import (
	"context"

	"github.com/ib-77/cps/pkg/cps"
)

// Retry re-invokes inner while it signals errors, up to attempts tries in
// total. Cancellation errors are not retried. Short-circuits raised by inner
// pass straight through; retry never applies to them.
func Retry[In, Out any](attempts int, inner cps.Operator[In, Out]) cps.Operator[In, Out] {
	if attempts < 1 {
		attempts = 1
	}

	return func(ctx context.Context, in cps.Result[In], next, final cps.Cont[Out]) {
		if !in.IsSuccess() {
			next(cps.FailFrom[In, Out](in))
			return
		}
		if final == nil {
			final = next
		}

		var attempt func(left int)
		attempt = func(left int) {
			inner(ctx, in, func(out cps.Result[Out]) {
				if out.IsFailure() && left > 1 && !cps.IsCancellationError(out.Err()) {
					attempt(left - 1)
					return
				}
				next(out)
			}, final)
		}
		attempt(attempts)
	}
}
