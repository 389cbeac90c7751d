package domain

import (
	"encoding/json"
	"strings"
)

// ChunkKind is the wire tag of a chunk variant.
type ChunkKind string

// Chunk kinds understood by the content model.
const (
	ChunkNormal  ChunkKind = "normal"
	ChunkHover   ChunkKind = "hover"
	ChunkAcronym ChunkKind = "acronym"
)

// AnnotatedContent is the mnemonic restructuring of a project's study
// material. Sections render in slice order.
type AnnotatedContent struct {
	Sections []Section
}

// Section is a headed group of points.
type Section struct {
	Heading      string
	HeadingEmoji string
	Points       []Point
}

// Point is one memorable line made of chunks. Emoji is optional.
type Point struct {
	Chunks []Chunk
	Emoji  string
}

// Chunk is the smallest addressable piece of annotated text. The set of
// implementations is closed: NormalChunk, HoverChunk and AcronymChunk.
type Chunk interface {
	// Kind reports the variant tag.
	Kind() ChunkKind
	// PlainText is the text shown inline, without annotations.
	PlainText() string

	isChunk()
}

// NormalChunk is plain text.
type NormalChunk struct {
	Text string
}

// HoverChunk is text carrying an explanation shown on demand.
type HoverChunk struct {
	Text        string
	Explanation string
}

// AcronymChunk is an acronym whose expansion is shown on demand.
type AcronymChunk struct {
	Text     string
	FullForm string
}

func (NormalChunk) Kind() ChunkKind  { return ChunkNormal }
func (HoverChunk) Kind() ChunkKind   { return ChunkHover }
func (AcronymChunk) Kind() ChunkKind { return ChunkAcronym }

func (c NormalChunk) PlainText() string  { return c.Text }
func (c HoverChunk) PlainText() string   { return c.Text }
func (c AcronymChunk) PlainText() string { return c.Text }

func (NormalChunk) isChunk()  {}
func (HoverChunk) isChunk()   {}
func (AcronymChunk) isChunk() {}

// PlainText reconstructs the plain reading of a point by concatenating its
// chunk texts in order.
func PlainText(p Point) string {
	var b strings.Builder
	for _, c := range p.Chunks {
		b.WriteString(c.PlainText())
	}
	return b.String()
}

// Validate checks the structural invariants of the content tree. It returns
// a *ContentValidationError naming the first offending element.
func (c *AnnotatedContent) Validate() error {
	if c == nil {
		return &ContentValidationError{Path: "sections", Reason: "must not be empty"}
	}
	return validateWire(c.toWire())
}

// MarshalJSON encodes the content in the generation service's wire format.
func (c AnnotatedContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toWire())
}

// UnmarshalJSON decodes and validates wire-format content. Unknown chunk
// types are rejected rather than skipped.
func (c *AnnotatedContent) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeAnnotatedContent(data)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// DecodeAnnotatedContent parses the wire JSON of annotated content and
// validates it.
func DecodeAnnotatedContent(data []byte) (*AnnotatedContent, error) {
	var w contentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &ContentValidationError{Reason: "invalid JSON", Err: err}
	}
	if err := validateWire(&w); err != nil {
		return nil, err
	}
	return w.toDomain(), nil
}

// Wire representation. Validation runs on this form so that unknown chunk
// tags can be reported with their path.
type contentWire struct {
	Sections []sectionWire `json:"sections" validate:"min=1,dive"`
}

type sectionWire struct {
	Heading      string      `json:"heading"`
	HeadingEmoji string      `json:"headingEmoji"`
	Points       []pointWire `json:"points" validate:"min=1,dive"`
}

type pointWire struct {
	Chunks []chunkWire `json:"chunks" validate:"min=1,dive"`
	Emoji  string      `json:"emoji,omitempty"`
}

type chunkWire struct {
	Type        string `json:"type" validate:"oneof=normal hover acronym"`
	Text        string `json:"text" validate:"required_unless=Type normal"`
	Explanation string `json:"explanation,omitempty" validate:"required_if=Type hover"`
	FullForm    string `json:"fullForm,omitempty" validate:"required_if=Type acronym"`
}

func (c *AnnotatedContent) toWire() *contentWire {
	w := &contentWire{Sections: make([]sectionWire, len(c.Sections))}
	for i, s := range c.Sections {
		sw := sectionWire{
			Heading:      s.Heading,
			HeadingEmoji: s.HeadingEmoji,
			Points:       make([]pointWire, len(s.Points)),
		}
		for j, p := range s.Points {
			pw := pointWire{Emoji: p.Emoji, Chunks: make([]chunkWire, len(p.Chunks))}
			for k, ch := range p.Chunks {
				pw.Chunks[k] = chunkToWire(ch)
			}
			sw.Points[j] = pw
		}
		w.Sections[i] = sw
	}
	return w
}

func chunkToWire(c Chunk) chunkWire {
	switch v := c.(type) {
	case NormalChunk:
		return chunkWire{Type: string(ChunkNormal), Text: v.Text}
	case HoverChunk:
		return chunkWire{Type: string(ChunkHover), Text: v.Text, Explanation: v.Explanation}
	case AcronymChunk:
		return chunkWire{Type: string(ChunkAcronym), Text: v.Text, FullForm: v.FullForm}
	default:
		// nil chunk; fails the oneof check
		return chunkWire{}
	}
}

func (w *contentWire) toDomain() *AnnotatedContent {
	c := &AnnotatedContent{Sections: make([]Section, len(w.Sections))}
	for i, sw := range w.Sections {
		s := Section{
			Heading:      sw.Heading,
			HeadingEmoji: sw.HeadingEmoji,
			Points:       make([]Point, len(sw.Points)),
		}
		for j, pw := range sw.Points {
			p := Point{Emoji: pw.Emoji, Chunks: make([]Chunk, len(pw.Chunks))}
			for k, cw := range pw.Chunks {
				p.Chunks[k] = cw.toDomain()
			}
			s.Points[j] = p
		}
		c.Sections[i] = s
	}
	return c
}

// toDomain assumes the chunk has passed validation.
func (w chunkWire) toDomain() Chunk {
	switch ChunkKind(w.Type) {
	case ChunkHover:
		return HoverChunk{Text: w.Text, Explanation: w.Explanation}
	case ChunkAcronym:
		return AcronymChunk{Text: w.Text, FullForm: w.FullForm}
	default:
		return NormalChunk{Text: w.Text}
	}
}
