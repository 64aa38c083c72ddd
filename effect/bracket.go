package effect

import (
	"context"
	"errors"
	"fmt"

	"github.com/davenverse/shellfish/errs"
)

// Bracket is the resource-safety primitive. It runs acquire, feeds the
// acquired value to use, and guarantees release runs exactly once after the
// use body terminates, whether it returns normally, fails, panics, or is
// cancelled through the context.
//
// If acquire fails, neither use nor release run. Release executes under
// context.WithoutCancel so cleanup completes even when the surrounding
// execution was cancelled; it finishes before Bracket's result is available.
//
// A release failure is tagged errs.CodeReleaseFailed. If both use and
// release fail, the errors are combined with errors.Join so neither is
// dropped.
func Bracket[R, A any](acquire Effect[R], use func(R) Effect[A], release func(ctx context.Context, r R) error) Effect[A] {
	return func(ctx context.Context) (A, error) {
		var zero A

		r, err := acquire.Run(ctx)
		if err != nil {
			return zero, err
		}

		var result A
		var useErr error
		func() {
			// The deferred release also covers panics in the use body:
			// release runs during unwinding and the panic continues. A
			// release failure on that path is carried in the repanicked
			// value so it is never silently dropped.
			defer func() {
				relErr := release(context.WithoutCancel(ctx), r)
				if relErr != nil {
					relErr = errs.Wrap(relErr, errs.CodeReleaseFailed, "resource release failed")
				}
				if p := recover(); p != nil {
					if relErr != nil {
						panic(fmt.Errorf("%v; %w", p, relErr))
					}
					panic(p)
				}
				if relErr != nil {
					useErr = errors.Join(useErr, relErr)
				}
			}()
			result, useErr = use(r).Run(ctx)
		}()

		if useErr != nil {
			return zero, useErr
		}
		return result, nil
	}
}
