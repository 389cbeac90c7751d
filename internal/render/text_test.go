package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/session"
	"github.com/phrazzld/studyaid/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRenderContent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewText(&buf, 80)
	require.NoError(t, r.RenderContent(&buf, testutils.MustDecodeContent(t, testutils.SampleMnemonicsJSON)))

	out := buf.String()
	assert.Contains(t, out, "🌱 Photosynthesis\n")
	assert.Contains(t, out, "Plants capture light with chlorophyll[1] and store it as ATP[2]")
	assert.Contains(t, out, "[1] chlorophyll: Green pigment in chloroplasts")
	assert.Contains(t, out, "[2] ATP = Adenosine triphosphate")
	assert.Contains(t, out, "  • Oxygen is released as a by-product.\n", "points without emoji get a bullet")
}

func TestTextRenderContentKeepsPlainReading(t *testing.T) {
	t.Parallel()

	content := testutils.MustDecodeContent(t, testutils.SampleMnemonicsJSON)
	var buf bytes.Buffer
	require.NoError(t, NewText(&buf, 200).RenderContent(&buf, content))

	stripped := strings.NewReplacer("[1]", "", "[2]", "").Replace(buf.String())
	for _, p := range content.Sections[0].Points {
		assert.Contains(t, stripped, domain.PlainText(p))
	}
}

func TestTextRenderContentWraps(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("mitochondria produce energy ", 8)
	content := &domain.AnnotatedContent{Sections: []domain.Section{{
		Heading: "Cells",
		Points:  []domain.Point{{Chunks: []domain.Chunk{domain.NormalChunk{Text: long}}}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, NewText(&buf, 30).RenderContent(&buf, content))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), 4)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 30, "line %q", line)
	}
	assert.True(t, strings.HasPrefix(lines[3], "    "), "continuation lines hang under the bullet")
}

func TestRenderUnknownChunk(t *testing.T) {
	t.Parallel()

	content := &domain.AnnotatedContent{Sections: []domain.Section{{
		Heading: "H",
		Points:  []domain.Point{{Chunks: []domain.Chunk{nil}}},
	}}}

	var buf bytes.Buffer
	assert.ErrorIs(t, NewText(&buf, 80).RenderContent(&buf, content), ErrUnknownChunk)
	assert.ErrorIs(t, NewHTML().RenderContent(&buf, content), ErrUnknownChunk)
}

func TestTextRenderAnalysis(t *testing.T) {
	t.Parallel()

	analysis := testutils.MustDecodeAnalysis(t, `{
		"accuracy": 85,
		"correct_words": ["photosynthesis", "energy"],
		"wrong_words": [],
		"missed_points": ["chlorophyll role"],
		"revise_again": []
	}`)

	var buf bytes.Buffer
	require.NoError(t, NewText(&buf, 80).RenderAnalysis(&buf, analysis))

	out := buf.String()
	assert.Contains(t, out, "Accuracy: 85%  Excellent Recall!")
	assert.Contains(t, out, "Missed points\n  - chlorophyll role\n")
	assert.Contains(t, out, "Wrong words\n  (none)\n", "empty collections render as empty, not as errors")
	assert.Equal(t, 1, strings.Count(out, "  - chlorophyll role"))
}

func TestTextRenderFlashcard(t *testing.T) {
	t.Parallel()

	card := &domain.Flashcard{Question: "What pigment absorbs light?", Answer: "Chlorophyll"}

	tests := []struct {
		name       string
		view       session.FlashcardView
		contains   []string
		notContain []string
	}{
		{
			name:       "hidden",
			view:       session.FlashcardView{State: session.FlashcardsReady, Total: 3, Card: card},
			contains:   []string{"Card 1 of 3", "Q: What pigment absorbs light?", "(answer hidden)"},
			notContain: []string{"Chlorophyll"},
		},
		{
			name:     "revealed",
			view:     session.FlashcardView{State: session.FlashcardsReady, Index: 2, Total: 3, Revealed: true, Card: card},
			contains: []string{"Card 3 of 3", "A: Chlorophyll"},
		},
		{
			name:     "empty",
			view:     session.FlashcardView{},
			contains: []string{"No flashcards available."},
		},
		{
			name:     "empty with error",
			view:     session.FlashcardView{ErrorMessage: "Failed to generate flashcards. Please try again."},
			contains: []string{"Failed to generate flashcards. Please try again."},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, NewText(&buf, 60).RenderFlashcard(&buf, tc.view))
			for _, s := range tc.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tc.notContain {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestTextRenderProjects(t *testing.T) {
	t.Parallel()

	p := domain.Project{
		ID:            time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC).UnixMilli(),
		Title:         "Cell Biology",
		StudyMaterial: strings.Repeat("m", 150),
	}

	var buf bytes.Buffer
	r := NewText(&buf, 200)
	require.NoError(t, r.RenderProjects(&buf, []domain.Project{p}))

	out := buf.String()
	assert.Contains(t, out, "Cell Biology")
	assert.Contains(t, out, p.CreatedAt().Format("2006-01-02"))
	assert.Contains(t, out, strings.Repeat("m", domain.DefaultPreviewLength)+"...")

	buf.Reset()
	require.NoError(t, r.RenderProjects(&buf, nil))
	assert.Equal(t, "No projects yet.\n", buf.String())
}
