package generation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyAnswer is returned when a Blurt answer is blank. It is detected
// locally and never reaches the generation service.
var ErrEmptyAnswer = errors.New("answer cannot be empty")

// Sentinels matched by errors.Is against a *Error of the same kind.
var (
	// ErrUnreachable means no response was received: connection failure,
	// timeout or a cancelled context.
	ErrUnreachable = errors.New("generation service unreachable")

	// ErrRejectedByService means the service answered with a non-2xx status.
	ErrRejectedByService = errors.New("generation request rejected by service")

	// ErrMalformedResponse means the response body could not be decoded or
	// failed content validation.
	ErrMalformedResponse = errors.New("malformed response from generation service")
)

// ErrorKind classifies a failed generation call.
type ErrorKind int

// Error kinds.
const (
	KindUnreachable ErrorKind = iota + 1
	KindRejectedByService
	KindMalformedResponse
)

var kindNames = [...]string{
	KindUnreachable:       "unreachable",
	KindRejectedByService: "rejected_by_service",
	KindMalformedResponse: "malformed_response",
}

// String returns the snake_case kind name used in logs.
func (k ErrorKind) String() string {
	if k < KindUnreachable || k > KindMalformedResponse {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// Retryable reports whether the user may simply try again. Malformed
// responses need developer attention, though the user is still offered a
// retry.
func (k ErrorKind) Retryable() bool {
	return k == KindUnreachable || k == KindRejectedByService
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnreachable:
		return ErrUnreachable
	case KindRejectedByService:
		return ErrRejectedByService
	case KindMalformedResponse:
		return ErrMalformedResponse
	default:
		return nil
	}
}

// Error is the typed failure of a generation call.
type Error struct {
	Kind ErrorKind
	Mode Mode
	// StatusCode is set for KindRejectedByService and, when a body was
	// received, for KindMalformedResponse.
	StatusCode int
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s generation failed: %s", e.Mode, strings.ReplaceAll(e.Kind.String(), "_", " "))
	if e.Kind == KindRejectedByService && e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewError builds a *Error.
func NewError(kind ErrorKind, mode Mode, statusCode int, err error) *Error {
	return &Error{Kind: kind, Mode: mode, StatusCode: statusCode, Err: err}
}

// KindOf extracts the kind of a generation error.
func KindOf(err error) (ErrorKind, bool) {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind, true
	}
	return 0, false
}

var failureMessages = map[Mode]string{
	ModeBlurt:      "Failed to analyze your answer. Please try again.",
	ModeFlashcards: "Failed to generate flashcards. Please try again.",
	ModeMnemonics:  "Failed to generate mnemonics. Please try again.",
}

// UserMessage returns the message shown to the user for a failed call in
// the given mode. It never exposes internal details.
func UserMessage(mode Mode, err error) string {
	if errors.Is(err, ErrEmptyAnswer) {
		return "Please write your answer before analyzing"
	}
	if msg, ok := failureMessages[mode]; ok {
		return msg
	}
	return "Something went wrong. Please try again."
}
