package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/phrazzld/studyaid/internal/session"
)

// RenderFlashcard writes the current card: progress, question, and the
// answer once revealed.
func (t *Text) RenderFlashcard(w io.Writer, v session.FlashcardView) error {
	if v.Card == nil {
		msg := "No flashcards available."
		if v.ErrorMessage != "" {
			return t.RenderError(w, v.ErrorMessage)
		}
		_, err := io.WriteString(w, t.muted.Render(msg)+"\n")
		return err
	}

	inner := t.width - 4
	var body strings.Builder
	body.WriteString(t.label.Render("Q: ") + wordwrap.String(v.Card.Question, inner-3))
	body.WriteString("\n\n")
	if v.Revealed {
		body.WriteString(t.accent.Render("A: ") + wordwrap.String(v.Card.Answer, inner-3))
	} else {
		body.WriteString(t.muted.Render("(answer hidden)"))
	}

	out := fmt.Sprintf("%s\n%s\n", t.muted.Render(v.Progress()), t.card.Render(body.String()))
	_, err := io.WriteString(w, out)
	return err
}
