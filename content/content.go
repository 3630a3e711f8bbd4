// Package content defines the normalized book model produced by extraction
// and consumed by planning and rendering. The JSON form of the model is the
// stable boundary between the extract and render halves of the pipeline, so
// its shape is fixed here and nowhere else.
package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// BlockKind discriminates chapter block variants.
// ENUM(paragraph, quote)
type BlockKind int

// Block is a single ordered unit of chapter body text. Text is already
// whitespace-normalized by extraction. Anchor, when set, names a source
// identifier that must materialize as a bookmark on this block.
type Block struct {
	Kind   BlockKind
	Text   string
	Anchor string
}

// Chapter holds one extracted chapter. Number is parsed from the Roman
// numeral in the source heading, never synthesized. Title keeps the source
// casing; display transforms happen at plan/emit time. Anchors are source
// identifiers attached to text-less elements inside this chapter - they
// produce bookmarks but no blocks.
type Chapter struct {
	Number  int
	Title   string
	Anchors []string
	Blocks  []Block
}

// Dedication is optional front-matter data.
type Dedication struct {
	To      string   `json:"to,omitempty"`
	From    string   `json:"from,omitempty"`
	Credits []string `json:"credits,omitempty"`
}

// Book keeps document-level metadata.
type Book struct {
	Title    string
	Subtitle string
	Author   string
	// Lang is detected from the source markup and is advisory only; it does
	// not participate in the JSON boundary.
	Lang language.Tag
}

// Model is the complete result of one extraction run. It is treated as
// immutable once extraction returns.
type Model struct {
	Book       Book
	Dedication *Dedication
	Chapters   []Chapter
}

// ChapterBookmark returns the deterministic bookmark name for a chapter.
// Never taken from the source, always synthesized from the parsed number.
func ChapterBookmark(number int) string {
	return fmt.Sprintf("chapter_%d", number)
}

// SanitizeBookmark maps a source identifier onto the identifier-safe alphabet
// accepted for bookmark names, replacing every non-alphanumeric rune with an
// underscore.
func SanitizeBookmark(id string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, id)
}

// Unmarshal decodes a serialized model, rejecting malformed chapters.
func Unmarshal(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unable to parse model: %w", err)
	}
	return &m, nil
}

// Wire types below pin the serialized shape. Paragraph blocks are bare
// strings, quotes are {"type":"quote","content":...} objects; the union is
// what existing boundary consumers expect. A block carrying an anchor is
// always encoded as an object so the anchor survives the boundary, anchored
// paragraphs included.

type wireBook struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author"`
}

type wireChapter struct {
	Number     int               `json:"number"`
	Title      string            `json:"title"`
	Paragraphs []json.RawMessage `json:"paragraphs"`
	Anchors    []string          `json:"anchors,omitempty"`
}

type wireBlock struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Anchor  string `json:"anchor,omitempty"`
}

type wireModel struct {
	Book       wireBook      `json:"book"`
	Dedication *Dedication   `json:"dedication,omitempty"`
	Chapters   []wireChapter `json:"chapters"`
}

// MarshalJSON implements the boundary encoding.
func (m *Model) MarshalJSON() ([]byte, error) {
	out := wireModel{
		Book: wireBook{
			Title:    m.Book.Title,
			Subtitle: m.Book.Subtitle,
			Author:   m.Book.Author,
		},
		Dedication: m.Dedication,
		Chapters:   make([]wireChapter, 0, len(m.Chapters)),
	}
	for _, ch := range m.Chapters {
		wc := wireChapter{
			Number:     ch.Number,
			Title:      ch.Title,
			Paragraphs: make([]json.RawMessage, 0, len(ch.Blocks)),
			Anchors:    ch.Anchors,
		}
		for _, b := range ch.Blocks {
			var (
				data []byte
				err  error
			)
			switch {
			case b.Kind == BlockKindParagraph && b.Anchor == "":
				data, err = json.Marshal(b.Text)
			case b.Kind == BlockKindParagraph:
				data, err = json.Marshal(wireBlock{Type: "paragraph", Content: b.Text, Anchor: b.Anchor})
			case b.Kind == BlockKindQuote:
				data, err = json.Marshal(wireBlock{Type: "quote", Content: b.Text, Anchor: b.Anchor})
			default:
				err = fmt.Errorf("unknown block kind %d", b.Kind)
			}
			if err != nil {
				return nil, fmt.Errorf("chapter %d: %w", ch.Number, err)
			}
			wc.Paragraphs = append(wc.Paragraphs, data)
		}
		out.Chapters = append(out.Chapters, wc)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements the boundary decoding.
func (m *Model) UnmarshalJSON(data []byte) error {
	var in wireModel
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	m.Book = Book{
		Title:    in.Book.Title,
		Subtitle: in.Book.Subtitle,
		Author:   in.Book.Author,
	}
	m.Dedication = in.Dedication
	m.Chapters = make([]Chapter, 0, len(in.Chapters))

	for _, wc := range in.Chapters {
		ch := Chapter{
			Number:  wc.Number,
			Title:   wc.Title,
			Anchors: wc.Anchors,
			Blocks:  make([]Block, 0, len(wc.Paragraphs)),
		}
		if ch.Number <= 0 {
			return fmt.Errorf("chapter %q has invalid number %d", wc.Title, wc.Number)
		}
		for i, raw := range wc.Paragraphs {
			var text string
			if err := json.Unmarshal(raw, &text); err == nil {
				ch.Blocks = append(ch.Blocks, Block{Kind: BlockKindParagraph, Text: text})
				continue
			}
			var wb wireBlock
			if err := json.Unmarshal(raw, &wb); err != nil {
				return fmt.Errorf("chapter %d paragraph %d: unrecognized block shape: %w", wc.Number, i, err)
			}
			switch wb.Type {
			case "paragraph":
				ch.Blocks = append(ch.Blocks, Block{Kind: BlockKindParagraph, Text: wb.Content, Anchor: wb.Anchor})
			case "quote":
				ch.Blocks = append(ch.Blocks, Block{Kind: BlockKindQuote, Text: wb.Content, Anchor: wb.Anchor})
			default:
				return fmt.Errorf("chapter %d paragraph %d: unknown block type %q", wc.Number, i, wb.Type)
			}
		}
		m.Chapters = append(m.Chapters, ch)
	}
	return nil
}
