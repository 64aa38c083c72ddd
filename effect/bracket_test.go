package effect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davenverse/shellfish/effect"
	"github.com/davenverse/shellfish/errs"
)

func countingRelease(releases *int) func(context.Context, string) error {
	return func(context.Context, string) error {
		*releases++
		return nil
	}
}

func TestBracketReleasesOnSuccess(t *testing.T) {
	releases := 0
	e := effect.Bracket(effect.Pure("res"), func(r string) effect.Effect[string] {
		return effect.Pure(r + "-used")
	}, countingRelease(&releases))

	v, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "res-used", v)
	assert.Equal(t, 1, releases)
}

func TestBracketReleasesOnFailure(t *testing.T) {
	boom := errors.New("boom")
	releases := 0
	e := effect.Bracket(effect.Pure("res"), func(string) effect.Effect[string] {
		return effect.Fail[string](boom)
	}, countingRelease(&releases))

	_, err := e.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, releases, "release must run exactly once even when use fails")
}

func TestBracketReleasesOnPanic(t *testing.T) {
	releases := 0
	e := effect.Bracket(effect.Pure("res"), func(string) effect.Effect[string] {
		return effect.Suspend(func(context.Context) (string, error) {
			panic("use body panicked")
		})
	}, countingRelease(&releases))

	assert.Panics(t, func() {
		_, _ = e.Run(context.Background())
	})
	assert.Equal(t, 1, releases, "release must run while the panic unwinds")
}

func TestBracketPanicCarriesReleaseFailure(t *testing.T) {
	relErr := errors.New("release failed")
	e := effect.Bracket(effect.Pure("res"), func(string) effect.Effect[string] {
		return effect.Suspend(func(context.Context) (string, error) {
			panic("use body panicked")
		})
	}, func(context.Context, string) error {
		return relErr
	})

	defer func() {
		p := recover()
		require.NotNil(t, p, "the use body's panic must propagate")
		err, ok := p.(error)
		require.True(t, ok, "a panic alongside a failed release carries an error value")
		assert.ErrorIs(t, err, relErr, "release failure must survive the panic path")
		assert.Contains(t, err.Error(), "use body panicked")
	}()
	_, _ = e.Run(context.Background())
}

func TestBracketReleasesOnCancellation(t *testing.T) {
	releases := 0
	started := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	e := effect.Bracket(effect.Pure("res"), func(string) effect.Effect[int] {
		return effect.Suspend(func(ctx context.Context) (int, error) {
			close(started)
			<-ctx.Done()
			return 0, ctx.Err()
		})
	}, countingRelease(&releases))

	go func() {
		<-started
		cancel()
	}()

	_, err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, releases, "cancellation must not bypass release")
}

func TestBracketSkipsReleaseWhenAcquireFails(t *testing.T) {
	boom := errors.New("acquire failed")
	releases := 0
	used := false

	e := effect.Bracket(effect.Fail[string](boom), func(string) effect.Effect[string] {
		used = true
		return effect.Pure("unreachable")
	}, countingRelease(&releases))

	_, err := e.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, used)
	assert.Zero(t, releases)
}

func TestBracketSurfacesBothFailures(t *testing.T) {
	useErr := errors.New("use failed")
	relErr := errors.New("release failed")

	e := effect.Bracket(effect.Pure("res"), func(string) effect.Effect[string] {
		return effect.Fail[string](useErr)
	}, func(context.Context, string) error {
		return relErr
	})

	_, err := e.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, useErr, "use failure must not be dropped")
	assert.ErrorIs(t, err, relErr, "release failure must not be dropped")
	assert.Equal(t, errs.CodeReleaseFailed, errs.GetCode(err))
}

func TestBracketReportsReleaseFailureAfterSuccess(t *testing.T) {
	relErr := errors.New("release failed")
	e := effect.Bracket(effect.Pure("res"), func(r string) effect.Effect[string] {
		return effect.Pure(r)
	}, func(context.Context, string) error {
		return relErr
	})

	_, err := e.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, relErr)
}

func TestNestedBracketsReleaseInReverseOrder(t *testing.T) {
	var order []string
	release := func(name string) func(context.Context, string) error {
		return func(context.Context, string) error {
			order = append(order, name)
			return nil
		}
	}

	inner := func(string) effect.Effect[string] {
		return effect.Bracket(effect.Pure("inner"), func(r string) effect.Effect[string] {
			return effect.Pure(r)
		}, release("inner"))
	}
	outer := effect.Bracket(effect.Pure("outer"), inner, release("outer"))

	_, err := outer.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"inner", "outer"}, order, "stack discipline: reverse of acquisition")
}

func TestResourceUse(t *testing.T) {
	var acquired, released bool
	res := effect.NewResource(effect.Suspend(func(context.Context) (string, error) {
		acquired = true
		return "handle", nil
	}), func(context.Context, string) error {
		released = true
		return nil
	})

	// Describing the use does not acquire anything yet.
	e := effect.Use(res, func(r string) effect.Effect[string] {
		return effect.Pure(r + "-ok")
	})
	assert.False(t, acquired)

	v, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "handle-ok", v)
	assert.True(t, acquired)
	assert.True(t, released)
}
