// Package effect provides lazily-evaluated, composable descriptions of
// side-effecting computations.
//
// An Effect is a recipe, not a result: constructing one performs no I/O, and
// an Effect may be executed zero, one, or many times via Run. Each execution
// is independent; results are never cached. Effects compose through
// sequencing combinators (Map, FlatMap, Then, Zip) that preserve
// left-to-right program order within a chain and short-circuit on failure
// unless explicitly intercepted (Attempt, Recover).
//
// The resource-safety primitive is Bracket, which guarantees a release step
// runs exactly once after the use body completes, whether the body returns
// normally, fails, panics, or is cancelled through the context. Resource
// pairs an acquisition effect with its release function so acquire/use/release
// cycles can be passed around as values.
//
// # Basic Usage
//
// Build a chain and run it explicitly:
//
//	greeting := effect.Pure("hello")
//	shouted := effect.Map(greeting, strings.ToUpper)
//	result, err := shouted.Run(ctx)
//
// # Cancellation
//
// Every combinator treats the start of an effect as a suspension point:
// a cancelled context fails the chain with the context's error. Release
// steps run under context.WithoutCancel so cleanup completes even when the
// surrounding execution has been cancelled.
package effect
