package effect

import "context"

// Resource pairs an acquisition effect with a release function. It describes
// a single acquire/use/release cycle per invocation; the cycle itself only
// happens when the effect returned by Use is run.
//
// Nested resources release in strict reverse order of acquisition, following
// from Bracket's defer discipline.
type Resource[R any] struct {
	acquire Effect[R]
	release func(ctx context.Context, r R) error
}

// NewResource creates a resource from an acquisition effect and a release
// function. For every successful acquisition the release function is invoked
// exactly once.
func NewResource[R any](acquire Effect[R], release func(ctx context.Context, r R) error) Resource[R] {
	return Resource[R]{acquire: acquire, release: release}
}

// Acquire returns the raw acquisition effect, bypassing scoped release.
// The caller takes over responsibility for releasing the resource.
func (r Resource[R]) Acquire() Effect[R] {
	return r.acquire
}

// ReleaseFunc returns the release function for use after a raw Acquire.
func (r Resource[R]) ReleaseFunc() func(ctx context.Context, r R) error {
	return r.release
}

// Use binds the resource's lifetime to the use callback: the resource is
// acquired when the returned effect runs and released when the callback's
// effect terminates, on every exit path.
func Use[R, A any](r Resource[R], use func(R) Effect[A]) Effect[A] {
	return Bracket(r.acquire, use, r.release)
}
