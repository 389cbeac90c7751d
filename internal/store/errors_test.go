package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrProjectNotFound", err: ErrProjectNotFound, expected: true},
		{
			name:     "wrapped ErrProjectNotFound",
			err:      fmt.Errorf("open project 42: %w", ErrProjectNotFound),
			expected: true,
		},
		{name: "unavailable", err: ErrUnavailable, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRetryable(NewStoreError("list projects", 0, ErrUnavailable, errors.New("dial tcp"))))
	assert.True(t, IsRetryable(NewStoreError("create project", 500, ErrRejected, nil)))
	assert.False(t, IsRetryable(NewStoreError("list projects", 200, ErrInvalidResponse, nil)))
	assert.False(t, IsRetryable(ErrEmptyTitleOrMaterial))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewStoreError("list projects", 0, ErrUnavailable, cause)

	assert.Equal(t, "list projects failed: project store unavailable: connection refused", err.Error())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)

	rejected := NewStoreError("create project", 503, ErrRejected, nil)
	assert.Equal(t, "create project failed (status 503): project store rejected the request", rejected.Error())
	assert.ErrorIs(t, rejected, ErrRejected)
	assert.NotErrorIs(t, rejected, ErrUnavailable)
}

func TestEmptyTitleOrMaterialAlias(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrEmptyTitleOrMaterial, domain.ErrEmptyTitleOrMaterial)
}
