package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/phrazzld/studyaid/internal/domain"
)

// ErrUnknownChunk is returned for a chunk of a kind the renderer does not
// know, including a nil chunk.
var ErrUnknownChunk = errors.New("unknown chunk kind")

// MinWidth is the narrowest wrap width Text accepts.
const MinWidth = 20

const defaultBullet = "•"

// Text renders for a terminal. Styling degrades to plain text when the
// output is not a terminal.
type Text struct {
	width int

	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	failure lipgloss.Style
	card    lipgloss.Style
}

// NewText creates a Text renderer writing to out, wrapping at width.
func NewText(out io.Writer, width int) *Text {
	r := lipgloss.NewRenderer(out)
	return &Text{
		width:   max(width, MinWidth),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		label:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("244")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("205")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("147")).
			Padding(0, 1),
	}
}

// RenderContent writes annotated content: one block per section, one bullet
// per point, with glosses numbered under the point that uses them.
func (t *Text) RenderContent(w io.Writer, c *domain.AnnotatedContent) error {
	if c == nil {
		return nil
	}

	var b strings.Builder
	note := 0
	for i, section := range c.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.heading.Render(joinNonEmpty(section.HeadingEmoji, section.Heading)))
		b.WriteString("\n\n")

		for _, point := range section.Points {
			line, notes, err := t.point(point, &note)
			if err != nil {
				return err
			}
			bullet := point.Emoji
			if bullet == "" {
				bullet = defaultBullet
			}
			b.WriteString(t.wrapHanging("  "+bullet+" ", line))
			for _, n := range notes {
				b.WriteString(t.wrapHanging("      ", t.muted.Render(n)))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// point returns the point's reading with note markers, and the notes.
func (t *Text) point(p domain.Point, counter *int) (string, []string, error) {
	var line strings.Builder
	var notes []string
	for _, chunk := range p.Chunks {
		switch c := chunk.(type) {
		case domain.NormalChunk:
			line.WriteString(c.Text)
		case domain.HoverChunk:
			*counter++
			fmt.Fprintf(&line, "%s[%d]", t.accent.Render(c.Text), *counter)
			notes = append(notes, fmt.Sprintf("[%d] %s: %s", *counter, c.Text, c.Explanation))
		case domain.AcronymChunk:
			*counter++
			fmt.Fprintf(&line, "%s[%d]", t.accent.Render(c.Text), *counter)
			notes = append(notes, fmt.Sprintf("[%d] %s = %s", *counter, c.Text, c.FullForm))
		default:
			return "", nil, fmt.Errorf("%w: %T", ErrUnknownChunk, chunk)
		}
	}
	return line.String(), notes, nil
}

// wrapHanging wraps s to the renderer width with prefix on the first line
// and matching indentation on the rest.
func (t *Text) wrapHanging(prefix, s string) string {
	pad := lipgloss.Width(prefix)
	wrapped := wordwrap.String(s, max(t.width-pad, MinWidth/2))
	lines := strings.Split(wrapped, "\n")
	rest := ""
	if len(lines) > 1 {
		rest = "\n" + indent.String(strings.Join(lines[1:], "\n"), uint(pad))
	}
	return prefix + lines[0] + rest + "\n"
}

// RenderAnalysis writes a blurt analysis with its accuracy tier.
func (t *Text) RenderAnalysis(w io.Writer, a *domain.BlurtAnalysis) error {
	if a == nil {
		return nil
	}

	var b strings.Builder
	tier := a.Tier()
	fmt.Fprintf(&b, "%s %d%%  %s\n", t.label.Render("Accuracy:"), a.Accuracy, t.tierStyle(tier).Render(tier.Label()))

	lists := []struct {
		title string
		items []string
	}{
		{"Correct words", a.CorrectWords},
		{"Wrong words", a.WrongWords},
		{"Missed points", a.MissedPoints},
		{"Revise again", a.ReviseAgain},
	}
	for _, l := range lists {
		fmt.Fprintf(&b, "\n%s\n", t.label.Render(l.title))
		if len(l.items) == 0 {
			b.WriteString("  " + t.muted.Render("(none)") + "\n")
			continue
		}
		for _, item := range l.items {
			b.WriteString(t.wrapHanging("  - ", item))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Text) tierStyle(tier domain.AccuracyTier) lipgloss.Style {
	switch tier {
	case domain.TierExcellent:
		return t.heading
	case domain.TierGood:
		return t.accent
	default:
		return t.failure
	}
}

// RenderError writes a user-facing error message.
func (t *Text) RenderError(w io.Writer, msg string) error {
	_, err := io.WriteString(w, t.failure.Render(msg)+"\n")
	return err
}

// RenderProjects writes one entry per project with its creation date and a
// preview of the material.
func (t *Text) RenderProjects(w io.Writer, projects []domain.Project) error {
	var b strings.Builder
	if len(projects) == 0 {
		b.WriteString(t.muted.Render("No projects yet.") + "\n")
	}
	for i, p := range projects {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			t.muted.Render(fmt.Sprintf("#%d", p.ID)),
			t.label.Render(p.Title),
			t.muted.Render(p.CreatedAt().Format("2006-01-02")))
		b.WriteString(t.wrapHanging("  ", p.Preview(domain.DefaultPreviewLength)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
