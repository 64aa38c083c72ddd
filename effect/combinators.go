package effect

import "context"

// Map transforms the eventual result of an effect without affecting
// execution order. The transformation must be pure; use FlatMap to sequence
// further effects.
func Map[A, B any](e Effect[A], f func(A) B) Effect[B] {
	return func(ctx context.Context) (B, error) {
		a, err := e.Run(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// FlatMap executes e, passes its result to f, and executes the effect f
// produces. The second effect's construction may depend on the first's
// runtime result, so effects form a dependency chain rather than a static
// graph. A failure in e short-circuits f entirely.
func FlatMap[A, B any](e Effect[A], f func(A) Effect[B]) Effect[B] {
	return func(ctx context.Context) (B, error) {
		a, err := e.Run(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).Run(ctx)
	}
}

// Then executes e then next, keeping only next's result. Use it when the
// prior effect's output is irrelevant.
func Then[A, B any](e Effect[A], next Effect[B]) Effect[B] {
	return func(ctx context.Context) (B, error) {
		if _, err := e.Run(ctx); err != nil {
			var zero B
			return zero, err
		}
		return next.Run(ctx)
	}
}

// Pair holds the results of two effects combined with Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip runs both effects concurrently and pairs their results. No ordering is
// guaranteed between the two branches' internal steps. Both branches complete
// before the pair's result is available: a failing branch cancels its sibling
// and Zip still waits for the sibling to finish unwinding.
func Zip[A, B any](left Effect[A], right Effect[B]) Effect[Pair[A, B]] {
	return func(ctx context.Context) (Pair[A, B], error) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		type rightResult struct {
			val B
			err error
		}
		ch := make(chan rightResult, 1)
		go func() {
			v, err := right.Run(ctx)
			ch <- rightResult{val: v, err: err}
		}()

		a, leftErr := left.Run(ctx)
		if leftErr != nil {
			cancel()
		}
		r := <-ch

		var zero Pair[A, B]
		if leftErr != nil {
			return zero, leftErr
		}
		if r.err != nil {
			return zero, r.err
		}
		return Pair[A, B]{First: a, Second: r.val}, nil
	}
}

// Outcome is the materialized result of an attempted effect: either a value
// or the error that would otherwise have propagated.
type Outcome[A any] struct {
	Value A
	Err   error
}

// Succeeded reports whether the attempt produced a value.
func (o Outcome[A]) Succeeded() bool {
	return o.Err == nil
}

// Attempt converts a failure into an explicit Outcome value so failure can
// be inspected and recovered rather than always propagating. The returned
// effect itself never fails.
func Attempt[A any](e Effect[A]) Effect[Outcome[A]] {
	return func(ctx context.Context) (Outcome[A], error) {
		a, err := e.Run(ctx)
		return Outcome[A]{Value: a, Err: err}, nil
	}
}

// Recover intercepts a failure of e and continues with the effect produced
// by handler. Successful results pass through untouched.
func Recover[A any](e Effect[A], handler func(error) Effect[A]) Effect[A] {
	return func(ctx context.Context) (A, error) {
		a, err := e.Run(ctx)
		if err == nil {
			return a, nil
		}
		return handler(err).Run(ctx)
	}
}
