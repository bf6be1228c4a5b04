package stream

import (
	"context"
	"sync"

	"github.com/ib-77/cps/pkg/cps"
	"github.com/ib-77/cps/pkg/cps/core"
)

// Run lifts a same-type operator over a channel of results, executing it
// with the given number of worker lines.
func Run[T any](ctx context.Context, inputCh <-chan cps.Result[T],
	o cps.Operator[T, T], lines int) <-chan cps.Result[T] {

	out := make(chan cps.Result[T])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Drive(ctx, inputCh, out, o, core.DriveHandlers[T, T]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Turnout lifts a type-changing operator over a channel of results.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan cps.Result[In],
	o cps.Operator[In, Out], lines int) <-chan cps.Result[Out] {

	out := make(chan cps.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Drive(ctx, inputCh, out, o, core.DriveHandlers[In, Out]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

type CollectHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
}

// Collect maps a channel of results to plain values via the handlers.
func Collect[In, Out any](ctx context.Context, input <-chan cps.Result[In],
	handlers CollectHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case in, ok := <-input:
				if !ok {
					return
				}

				var v Out
				if in.IsSuccess() {
					v = handlers.OnSuccess(ctx, in.Result())
				} else {
					v = handlers.OnError(ctx, in.Err())
				}

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
