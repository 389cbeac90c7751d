package testutils

import (
	"testing"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/stretchr/testify/require"
)

// SampleMnemonicsJSON is a valid annotated-content payload.
const SampleMnemonicsJSON = `{
  "sections": [
    {
      "heading": "Photosynthesis",
      "headingEmoji": "🌱",
      "points": [
        {
          "emoji": "☀️",
          "chunks": [
            {"type": "normal", "text": "Plants capture light with "},
            {"type": "hover", "text": "chlorophyll", "explanation": "Green pigment in chloroplasts"},
            {"type": "normal", "text": " and store it as "},
            {"type": "acronym", "text": "ATP", "fullForm": "Adenosine triphosphate"}
          ]
        },
        {
          "chunks": [{"type": "normal", "text": "Oxygen is released as a by-product."}]
        }
      ]
    }
  ]
}`

// SampleFlashcardsJSON is a valid three-card deck payload.
const SampleFlashcardsJSON = `{
  "flashcards": [
    {"question": "What pigment absorbs light?", "answer": "Chlorophyll"},
    {"question": "What molecule stores the captured energy?", "answer": "ATP"},
    {"question": "Which gas is released?", "answer": "Oxygen"}
  ]
}`

// SampleBlurtJSON is a valid analysis payload in the service's string
// accuracy form.
const SampleBlurtJSON = `{
  "accuracy": "72%",
  "correct_words": ["chlorophyll", "light"],
  "wrong_words": ["carbon"],
  "missed_points": ["Oxygen is released"],
  "revise_again": ["ATP"]
}`

// Envelope wraps a result payload as the service does.
func Envelope(result string) string {
	return `{"result": ` + result + `}`
}

// SampleProject returns a valid project for tests.
func SampleProject(t *testing.T) domain.Project {
	t.Helper()
	p, err := domain.NewProject("Photosynthesis", "Plants convert light into chemical energy stored as ATP. Oxygen is released.")
	require.NoError(t, err)
	return *p
}

// MustDecodeContent decodes an annotated-content payload.
func MustDecodeContent(t *testing.T, payload string) *domain.AnnotatedContent {
	t.Helper()
	content, err := domain.DecodeAnnotatedContent([]byte(payload))
	require.NoError(t, err)
	return content
}

// MustDecodeDeck decodes a flashcard deck payload.
func MustDecodeDeck(t *testing.T, payload string) *domain.FlashcardDeck {
	t.Helper()
	deck, err := domain.DecodeFlashcardDeck([]byte(payload))
	require.NoError(t, err)
	return deck
}

// MustDecodeAnalysis decodes a blurt analysis payload.
func MustDecodeAnalysis(t *testing.T, payload string) *domain.BlurtAnalysis {
	t.Helper()
	analysis, err := domain.DecodeBlurtAnalysis([]byte(payload))
	require.NoError(t, err)
	return analysis
}
