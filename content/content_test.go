package content

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleModel() *Model {
	return &Model{
		Book: Book{Title: "The Book", Subtitle: "A Story", Author: "Jane Roe"},
		Dedication: &Dedication{
			To:      "To the reader",
			From:    "with gratitude",
			Credits: []string{"First printing", "Set in Georgia"},
		},
		Chapters: []Chapter{
			{
				Number:  1,
				Title:   "The New Home",
				Anchors: []string{"ch1"},
				Blocks: []Block{
					{Kind: BlockKindParagraph, Text: "It was a dark and stormy night."},
					{Kind: BlockKindParagraph, Text: "The wind howled on.", Anchor: "storm"},
					{Kind: BlockKindQuote, Text: "Ample make this bed.", Anchor: "poem"},
				},
			},
			{Number: 2, Title: "A Long Day"},
		},
	}
}

func TestModelRoundTrip(t *testing.T) {
	in := sampleModel()

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Book != (Book{Title: "The Book", Subtitle: "A Story", Author: "Jane Roe"}) {
		t.Fatalf("book mismatch: %+v", out.Book)
	}
	if out.Dedication == nil || out.Dedication.To != in.Dedication.To || len(out.Dedication.Credits) != 2 {
		t.Fatalf("dedication mismatch: %+v", out.Dedication)
	}
	if len(out.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(out.Chapters))
	}
	ch := out.Chapters[0]
	if len(ch.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(ch.Blocks))
	}
	if ch.Blocks[0].Kind != BlockKindParagraph || ch.Blocks[1].Kind != BlockKindParagraph || ch.Blocks[2].Kind != BlockKindQuote {
		t.Fatalf("block kinds lost: %+v", ch.Blocks)
	}
	if ch.Blocks[2].Text != "Ample make this bed." {
		t.Fatalf("quote text lost: %q", ch.Blocks[2].Text)
	}
	if ch.Blocks[0].Anchor != "" || ch.Blocks[1].Anchor != "storm" || ch.Blocks[2].Anchor != "poem" {
		t.Fatalf("block anchors lost: %+v", ch.Blocks)
	}
	if len(ch.Anchors) != 1 || ch.Anchors[0] != "ch1" {
		t.Fatalf("anchors lost: %v", ch.Anchors)
	}
}

func TestModelWireShape(t *testing.T) {
	data, err := json.Marshal(sampleModel())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)

	// anchor-less paragraphs are bare strings, quotes are tagged objects
	if !strings.Contains(s, `"It was a dark and stormy night."`) {
		t.Fatalf("paragraph not serialized as a bare string: %s", s)
	}
	if !strings.Contains(s, `"type":"quote"`) || !strings.Contains(s, `"content":"Ample make this bed."`) {
		t.Fatalf("quote not serialized as a tagged object: %s", s)
	}
	// anchored blocks switch to the object form so the anchor travels
	if !strings.Contains(s, `{"type":"paragraph","content":"The wind howled on.","anchor":"storm"}`) {
		t.Fatalf("anchored paragraph not serialized as a tagged object: %s", s)
	}
	if !strings.Contains(s, `"anchor":"poem"`) {
		t.Fatalf("quote anchor not serialized: %s", s)
	}
}

func TestUnmarshalRejects(t *testing.T) {
	t.Run("invalid_chapter_number", func(t *testing.T) {
		data := `{"book":{"title":"T"},"chapters":[{"number":0,"title":"Zero","paragraphs":[]}]}`
		if _, err := Unmarshal([]byte(data)); err == nil {
			t.Fatal("expected error for non-positive chapter number")
		}
	})

	t.Run("unknown_block_type", func(t *testing.T) {
		data := `{"book":{"title":"T"},"chapters":[{"number":1,"title":"One","paragraphs":[{"type":"verse","content":"x"}]}]}`
		if _, err := Unmarshal([]byte(data)); err == nil {
			t.Fatal("expected error for unknown block type")
		}
	})

	t.Run("malformed_json", func(t *testing.T) {
		if _, err := Unmarshal([]byte(`{`)); err == nil {
			t.Fatal("expected error for malformed input")
		}
	})
}

func TestChapterBookmark(t *testing.T) {
	if got := ChapterBookmark(7); got != "chapter_7" {
		t.Fatalf("ChapterBookmark(7) = %q", got)
	}
}

func TestSanitizeBookmark(t *testing.T) {
	cases := []struct{ in, want string }{
		{"already_ok_123", "already_ok_123"},
		{"with-dash.and:colon", "with_dash_and_colon"},
		{"spaced out", "spaced_out"},
	}
	for _, c := range cases {
		if got := SanitizeBookmark(c.in); got != c.want {
			t.Fatalf("SanitizeBookmark(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
