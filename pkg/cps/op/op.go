package op

import (
	"context"
	"errors"

	"github.com/ib-77/cps/pkg/cps"
)

func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) cps.Operator[In, Out] {
	return func(ctx context.Context, in cps.Result[In], next, final cps.Cont[Out]) {
		if !in.IsSuccess() {
			next(cps.FailFrom[In, Out](in))
			return
		}
		next(cps.Success(onSuccess(ctx, in.Result())))
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) cps.Operator[In, Out] {
	return func(ctx context.Context, in cps.Result[In], next, final cps.Cont[Out]) {
		if !in.IsSuccess() {
			next(cps.FailFrom[In, Out](in))
			return
		}

		out, err := onTryExecute(ctx, in.Result())
		if err != nil {
			next(cps.Fail[Out](err))
			return
		}
		next(cps.Success(out))
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) cps.Operator[T, T] {
	return func(ctx context.Context, in cps.Result[T], next, final cps.Cont[T]) {
		if !in.IsSuccess() {
			next(in)
			return
		}

		if isValid, errMsg := validate(ctx, in.Result()); !isValid {
			next(cps.FailWith(errors.New(errMsg), in.Result()))
			return
		}
		next(in)
	}
}

// Filter routes values that fail the predicate to final: the rest of the
// pipeline is skipped and the value lands at the terminal consumer as is.
func Filter[T any](pred func(ctx context.Context, r T) bool) cps.Operator[T, T] {
	return func(ctx context.Context, in cps.Result[T], next, final cps.Cont[T]) {
		if !in.IsSuccess() {
			next(in)
			return
		}
		if final == nil {
			final = next
		}

		if pred(ctx, in.Result()) {
			next(in)
			return
		}
		final(in)
	}
}

func Tee[T any](sideEffect func(ctx context.Context, r T)) cps.Operator[T, T] {
	return func(ctx context.Context, in cps.Result[T], next, final cps.Cont[T]) {
		if in.IsSuccess() {
			sideEffect(ctx, in.Result())
		}
		next(in)
	}
}

// CatchError consumes upstream failures. handle receives the error plus the
// value that was in flight when it occurred (zero when none was carried) and
// decides how flow continues: a success result recovers, a failure result
// re-signals. Successful inputs pass through untouched.
func CatchError[T any](handle func(ctx context.Context, err error, last T) cps.Result[T]) cps.Operator[T, T] {
	return func(ctx context.Context, in cps.Result[T], next, final cps.Cont[T]) {
		if !in.IsFailure() {
			next(in)
			return
		}
		next(handle(ctx, in.Err(), in.Result()))
	}
}
