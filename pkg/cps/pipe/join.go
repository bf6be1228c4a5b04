package pipe

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/ib-77/cps/pkg/cps"
	"github.com/ib-77/cps/pkg/cps/core"
)

// ErrShortCircuitUntyped reports a success short-circuit raised before a
// value-type transition that has no converter to carry it across.
var ErrShortCircuitUntyped = errors.New("short-circuit across type transition without converter")

// Join composes two operators across a value-type transition. The result
// satisfies the operator contract, so joins nest with each other and with
// Pipe.
//
// The terminal consumer of the joined operator accepts Out values only. A
// short-circuit raised by the first operator carries a Mid value; short
// converts it for the terminal consumer. Failures cross the transition
// without conversion (their contextual value is dropped). Pass a nil short
// when the first operator never short-circuits on success; if it does
// anyway, the value is delivered as an ErrShortCircuitUntyped failure.
func Join[In, Mid, Out any](first cps.Operator[In, Mid], second cps.Operator[Mid, Out],
	short func(ctx context.Context, m Mid) Out) cps.Operator[In, Out] {

	return func(ctx context.Context, in cps.Result[In], next, final cps.Cont[Out]) {
		if final == nil {
			final = next
		}
		routing := core.GetErrorRouting(ctx, core.RouteToNext)

		fail := func(out cps.Result[Out]) {
			if routing == core.RouteToFinal {
				final(out)
				return
			}
			next(out)
		}

		if in.IsFailure() {
			next(cps.FailFrom[In, Out](in))
			return
		}
		in = cps.Settle(ctx, in)
		if in.IsFailure() {
			fail(cps.FailFrom[In, Out](in))
			return
		}

		runSecond := func(mv Mid) {
			var fired atomic.Bool
			once := func(c cps.Cont[Out]) cps.Cont[Out] {
				return func(out cps.Result[Out]) {
					if fired.CompareAndSwap(false, true) {
						c(out)
					}
				}
			}

			advance := once(func(out cps.Result[Out]) {
				if out.IsFailure() {
					fail(out)
					return
				}
				out = cps.Settle(ctx, out)
				if out.IsFailure() {
					fail(out)
					return
				}
				next(out)
			})
			shortcut := once(final)

			func() {
				defer func() {
					if r := recover(); r != nil {
						if fired.CompareAndSwap(false, true) {
							fail(cps.Fail[Out](recoveredError(r)))
						}
					}
				}()
				second(ctx, cps.Success(mv), advance, shortcut)
			}()
		}

		var fired atomic.Bool
		once := func(c cps.Cont[Mid]) cps.Cont[Mid] {
			return func(m cps.Result[Mid]) {
				if fired.CompareAndSwap(false, true) {
					c(m)
				}
			}
		}

		advance := once(func(m cps.Result[Mid]) {
			if m.IsFailure() {
				fail(cps.FailFrom[Mid, Out](m))
				return
			}
			m = cps.Settle(ctx, m)
			if m.IsFailure() {
				fail(cps.FailFrom[Mid, Out](m))
				return
			}
			runSecond(m.Result())
		})

		shortcut := once(func(m cps.Result[Mid]) {
			if m.IsFailure() {
				final(cps.FailFrom[Mid, Out](m))
				return
			}
			m = cps.Settle(ctx, m)
			if m.IsFailure() {
				final(cps.FailFrom[Mid, Out](m))
				return
			}
			if short == nil {
				final(cps.Fail[Out](ErrShortCircuitUntyped))
				return
			}
			final(cps.Success(short(ctx, m.Result())))
		})

		func() {
			defer func() {
				if r := recover(); r != nil {
					if fired.CompareAndSwap(false, true) {
						fail(cps.Fail[Out](recoveredError(r)))
					}
				}
			}()
			first(ctx, cps.Success(in.Result()), advance, shortcut)
		}()
	}
}
