package generation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMatchesKindSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     ErrorKind
		sentinel error
		others   []error
	}{
		{KindUnreachable, ErrUnreachable, []error{ErrRejectedByService, ErrMalformedResponse}},
		{KindRejectedByService, ErrRejectedByService, []error{ErrUnreachable, ErrMalformedResponse}},
		{KindMalformedResponse, ErrMalformedResponse, []error{ErrUnreachable, ErrRejectedByService}},
	}

	for _, tc := range tests {
		err := fmt.Errorf("wrapped: %w", NewError(tc.kind, ModeFlashcards, 0, errors.New("cause")))
		assert.ErrorIs(t, err, tc.sentinel, tc.kind.String())
		for _, other := range tc.others {
			assert.NotErrorIs(t, err, other, tc.kind.String())
		}

		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, tc.kind, kind)
	}

	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorUnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := &domain.ContentValidationError{Path: "sections", Reason: "must not be empty"}
	err := NewError(KindMalformedResponse, ModeMnemonics, 200, cause)

	var cve *domain.ContentValidationError
	require.ErrorAs(t, err, &cve)
	assert.Equal(t, "sections", cve.Path)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t,
		"mnemonics generation failed: malformed response: content validation failed at sections: must not be empty",
		err.Error())
}

func TestErrorMessageIncludesStatus(t *testing.T) {
	t.Parallel()

	err := NewError(KindRejectedByService, ModeBlurt, 503, nil)
	assert.Equal(t, "blurt generation failed: rejected by service (status 503)", err.Error())
}

func TestErrorKindRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, KindUnreachable.Retryable())
	assert.True(t, KindRejectedByService.Retryable())
	assert.False(t, KindMalformedResponse.Retryable())
	assert.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	transport := NewError(KindUnreachable, ModeBlurt, 0, nil)
	assert.Equal(t, "Failed to analyze your answer. Please try again.", UserMessage(ModeBlurt, transport))
	assert.Equal(t, "Failed to generate flashcards. Please try again.", UserMessage(ModeFlashcards, transport))
	assert.Equal(t, "Failed to generate mnemonics. Please try again.", UserMessage(ModeMnemonics, transport))
	assert.Equal(t, "Please write your answer before analyzing", UserMessage(ModeBlurt, ErrEmptyAnswer))
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(Mode("other"), transport))
}
