package generation

import (
	"context"

	"github.com/phrazzld/studyaid/internal/domain"
)

// Mode identifies a review mode and the generation endpoint serving it.
type Mode string

// Review modes.
const (
	ModeMnemonics  Mode = "mnemonics"
	ModeFlashcards Mode = "flashcards"
	ModeBlurt      Mode = "blurt"
)

// Gateway requests generated content for a project. Implementations make
// exactly one outbound call per method invocation, never retry, and only
// return structures that passed domain validation.
type Gateway interface {
	// GenerateMnemonics restructures the project's material into annotated
	// content.
	GenerateMnemonics(ctx context.Context, project domain.Project) (*domain.AnnotatedContent, error)

	// GenerateFlashcards builds a non-empty flashcard deck.
	GenerateFlashcards(ctx context.Context, project domain.Project) (*domain.FlashcardDeck, error)

	// AnalyzeBlurt scores a recalled answer against the project's material.
	// An answer that is blank after trimming fails with ErrEmptyAnswer
	// before any I/O.
	AnalyzeBlurt(ctx context.Context, project domain.Project, answer string) (*domain.BlurtAnalysis, error)
}
