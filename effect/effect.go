package effect

import "context"

// Effect represents a suspended computation that, when run, may perform I/O
// and produce an A or fail. Effects are immutable once constructed and own
// no OS resources themselves.
type Effect[A any] func(ctx context.Context) (A, error)

// Unit is the result type of effects that are executed only for their
// side effects.
type Unit struct{}

// Run executes the effect. This is the only point at which the described
// computation actually happens.
//
// Run checks the context before executing, making every effect boundary a
// cancellation point.
func (e Effect[A]) Run(ctx context.Context) (A, error) {
	if err := ctx.Err(); err != nil {
		var zero A
		return zero, err
	}
	return e(ctx)
}

// Pure returns an effect that yields v without performing any work.
func Pure[A any](v A) Effect[A] {
	return func(context.Context) (A, error) {
		return v, nil
	}
}

// Fail returns an effect that always fails with err.
func Fail[A any](err error) Effect[A] {
	return func(context.Context) (A, error) {
		var zero A
		return zero, err
	}
}

// Suspend wraps a function as an effect. The function is not invoked until
// the effect is run.
func Suspend[A any](f func(ctx context.Context) (A, error)) Effect[A] {
	return f
}

// Do wraps a result-less function as an effect yielding Unit.
func Do(f func(ctx context.Context) error) Effect[Unit] {
	return func(ctx context.Context) (Unit, error) {
		return Unit{}, f(ctx)
	}
}
