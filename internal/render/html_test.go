package render

import (
	"bytes"
	"testing"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLRenderContent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewHTML().RenderContent(&buf, testutils.MustDecodeContent(t, testutils.SampleMnemonicsJSON)))

	out := buf.String()
	assert.Contains(t, out, "<h2>🌱 Photosynthesis</h2>")
	assert.Contains(t, out, `<abbr class="gloss" title="Green pigment in chloroplasts">chlorophyll</abbr>`)
	assert.Contains(t, out, `<abbr class="acronym" title="Adenosine triphosphate">ATP</abbr>`)
	assert.Contains(t, out, "<li>☀️ Plants capture light with ")
	assert.Contains(t, out, "<li>Oxygen is released as a by-product.</li>")
}

func TestHTMLRenderEscapesGeneratedText(t *testing.T) {
	t.Parallel()

	content := &domain.AnnotatedContent{Sections: []domain.Section{{
		Heading: "# Not a title",
		Points: []domain.Point{{Chunks: []domain.Chunk{
			domain.NormalChunk{Text: "<script>alert(1)</script> *not emphasis* 1. "},
			domain.HoverChunk{Text: "[link](http://x)", Explanation: `say "hi" <b>`},
		}}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, NewHTML().RenderContent(&buf, content))

	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<em>")
	assert.Contains(t, out, "*not emphasis*")
	assert.NotContains(t, out, "<a href")
	assert.Contains(t, out, "<h2># Not a title</h2>")
	assert.Contains(t, out, `title="say &#34;hi&#34; &lt;b&gt;"`)
}

func TestHTMLRenderNil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewHTML().RenderContent(&buf, nil))
	assert.Empty(t, buf.String())
}
