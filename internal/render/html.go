package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// HTML renders annotated content as an HTML fragment: a heading per
// section and a list per section's points. Hover and acronym chunks become
// <abbr> elements whose title holds the gloss.
type HTML struct {
	md goldmark.Markdown
}

// NewHTML creates an HTML renderer.
func NewHTML() *HTML {
	return &HTML{
		md: goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe())),
	}
}

// RenderContent writes c as HTML.
func (h *HTML) RenderContent(w io.Writer, c *domain.AnnotatedContent) error {
	if c == nil {
		return nil
	}

	src, err := contentMarkdown(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.md.Convert(src, &buf); err != nil {
		return fmt.Errorf("failed to render content: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// contentMarkdown builds the markdown source. Chunk text is escaped so
// generated content cannot inject markup.
func contentMarkdown(c *domain.AnnotatedContent) ([]byte, error) {
	var b bytes.Buffer
	for _, section := range c.Sections {
		fmt.Fprintf(&b, "## %s\n\n", inlineText(joinNonEmpty(section.HeadingEmoji, section.Heading)))
		for _, point := range section.Points {
			b.WriteString("- ")
			if point.Emoji != "" {
				b.WriteString(inlineText(point.Emoji) + " ")
			}
			for _, chunk := range point.Chunks {
				switch ch := chunk.(type) {
				case domain.NormalChunk:
					b.WriteString(inlineText(ch.Text))
				case domain.HoverChunk:
					fmt.Fprintf(&b, `<abbr class="gloss" title="%s">%s</abbr>`,
						attrText(ch.Explanation), inlineText(ch.Text))
				case domain.AcronymChunk:
					fmt.Fprintf(&b, `<abbr class="acronym" title="%s">%s</abbr>`,
						attrText(ch.FullForm), inlineText(ch.Text))
				default:
					return nil, fmt.Errorf("%w: %T", ErrUnknownChunk, chunk)
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.Bytes(), nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`,
	`[`, `\[`, `]`, `\]`, `#`, `\#`, `!`, `\!`,
	`+`, `\+`, `-`, `\-`, `.`, `\.`, `|`, `\|`, `~`, `\~`,
	"\n", " ",
)

// inlineText escapes s for use as inline markdown text.
func inlineText(s string) string {
	return html.EscapeString(markdownEscaper.Replace(s))
}

// attrText escapes s for a double-quoted attribute value.
func attrText(s string) string {
	return html.EscapeString(strings.ReplaceAll(s, "\n", " "))
}
