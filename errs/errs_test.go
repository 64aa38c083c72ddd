package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "path does not exist")

	assert.Equal(t, CodeNotFound, err.Code())
	assert.Equal(t, ClassificationPermanent, err.Classification())
	assert.Equal(t, "path does not exist", err.Message())
	assert.Equal(t, "[NOT_FOUND] path does not exist", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeAlreadyExists, "destination %s is occupied", "/tmp/out")

	assert.Equal(t, CodeAlreadyExists, err.Code())
	assert.Equal(t, "destination /tmp/out is occupied", err.Message())
}

func TestWrap(t *testing.T) {
	t.Run("preserves cause chain", func(t *testing.T) {
		cause := fs.ErrNotExist
		err := Wrap(cause, CodeNotFound, "delete failed")

		require.NotNil(t, err)
		assert.Equal(t, CodeNotFound, err.Code())
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "delete failed")
	})

	t.Run("preserves inner classification", func(t *testing.T) {
		inner := New(CodeTimeout, "operation timed out")
		err := Wrap(inner, CodeReleaseFailed, "release failed")

		assert.Equal(t, CodeReleaseFailed, err.Code())
		assert.Equal(t, ClassificationRetryable, err.Classification())
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
		assert.Nil(t, Wrapf(nil, CodeInternal, "ignored %d", 1))
	})
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil error", nil, CodeUnknown},
		{"plain error", errors.New("boom"), CodeUnknown},
		{"structured error", New(CodeDecodeFailed, "bad bytes"), CodeDecodeFailed},
		{"wrapped structured error", fmt.Errorf("outer: %w", New(CodeSpawnFailed, "no such binary")), CodeSpawnFailed},
		{"stdlib not exist", fs.ErrNotExist, CodeNotFound},
		{"stdlib exist", fs.ErrExist, CodeAlreadyExists},
		{"wrapped stdlib not exist", fmt.Errorf("remove: %w", fs.ErrNotExist), CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fs.ErrNotExist))
	assert.True(t, IsNotFound(New(CodeNotFound, "missing")))
	assert.True(t, IsNotFound(Wrap(fs.ErrNotExist, CodeReleaseFailed, "cleanup")))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(New(CodeTimeout, "timed out")))
	assert.False(t, IsRetryable(New(CodeNotFound, "missing")))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}

func TestErrorsJoinCompatibility(t *testing.T) {
	// Joined use/release failures must keep both codes discoverable.
	useErr := New(CodeExecutionFailed, "body failed")
	releaseErr := New(CodeReleaseFailed, "cleanup failed")
	joined := errors.Join(useErr, releaseErr)

	assert.True(t, errors.Is(joined, useErr))
	assert.True(t, errors.Is(joined, releaseErr))

	var structured Error
	require.True(t, errors.As(joined, &structured))
}
