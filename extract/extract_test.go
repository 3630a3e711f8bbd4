package extract

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/Shane32/BookConverter/config"
	"github.com/Shane32/BookConverter/content"
)

func testDocConfig() *config.DocumentConfig {
	return &config.DocumentConfig{
		Strict: config.StrictConfig{
			EndMarkers:    []string{"THE END"},
			FooterMarkers: []string{"END OF THE PROJECT GUTENBERG"},
		},
	}
}

const sampleHTML = `<!DOCTYPE html>
<html lang="en">
<head><title>ignored</title></head>
<body>
<h1>The Book</h1>
<h3>A Story of Sorts</h3>
<h2>Written by Jane Roe</h2>
<h2 id="ch1">CHAPTER I — The New Home</h2>
<p>It was a   dark and
stormy night.</p>
<p id="anchor1">They settled in quickly.</p>
<pre>
   Ample make this bed.
   Make this bed with awe.
</pre>
<h2>CHAPTER II — A Long Day</h2>
<p>Morning came slowly.</p>
<h3>THE END</h3>
<section>*** END OF THE PROJECT GUTENBERG EBOOK ***</section>
</body>
</html>`

func TestExtractSample(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	model, idx, err := Extract(strings.NewReader(sampleHTML), testDocConfig(), log)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if model.Book.Title != "The Book" {
		t.Fatalf("title mismatch: %q", model.Book.Title)
	}
	if model.Book.Subtitle != "A Story of Sorts" {
		t.Fatalf("subtitle mismatch: %q", model.Book.Subtitle)
	}
	if model.Book.Author != "Jane Roe" {
		t.Fatalf("author mismatch: %q", model.Book.Author)
	}
	if model.Book.Lang.String() != "en" {
		t.Fatalf("lang mismatch: %q", model.Book.Lang)
	}

	if len(model.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(model.Chapters))
	}

	ch := model.Chapters[0]
	if ch.Number != 1 || ch.Title != "The New Home" {
		t.Fatalf("unexpected first chapter: %d %q", ch.Number, ch.Title)
	}
	if len(ch.Anchors) != 1 || ch.Anchors[0] != "ch1" {
		t.Fatalf("unexpected first chapter anchors: %v", ch.Anchors)
	}
	if len(ch.Blocks) != 3 {
		t.Fatalf("expected 3 blocks in first chapter, got %d", len(ch.Blocks))
	}
	if ch.Blocks[0].Kind != content.BlockKindParagraph || ch.Blocks[0].Text != "It was a dark and stormy night." {
		t.Fatalf("unexpected first block: %+v", ch.Blocks[0])
	}
	if ch.Blocks[1].Anchor != "anchor1" {
		t.Fatalf("block anchor lost: %+v", ch.Blocks[1])
	}
	if ch.Blocks[2].Kind != content.BlockKindQuote {
		t.Fatalf("expected quote block, got %+v", ch.Blocks[2])
	}
	if strings.Contains(ch.Blocks[2].Text, "\n") {
		t.Fatalf("quote text not normalized: %q", ch.Blocks[2].Text)
	}

	ch = model.Chapters[1]
	if ch.Number != 2 || ch.Title != "A Long Day" {
		t.Fatalf("unexpected second chapter: %d %q", ch.Number, ch.Title)
	}
	if len(ch.Blocks) != 1 {
		t.Fatalf("expected 1 block in second chapter, got %d", len(ch.Blocks))
	}

	// sample has no cross-references so validation must pass
	if err := idx.Validate(model); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestExtractStrictMode(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	t.Run("rejects_text_bearing_div", func(t *testing.T) {
		doc := `<html><body>
<h2>CHAPTER I — One</h2>
<p>Fine.</p>
<div>Surprise text the pipeline cannot place.</div>
</body></html>`
		_, _, err := Extract(strings.NewReader(doc), testDocConfig(), log)
		var ee *ExtractionError
		if !errors.As(err, &ee) {
			t.Fatalf("expected extraction error, got %v", err)
		}
	})

	t.Run("rejects_nested_element_in_paragraph", func(t *testing.T) {
		doc := `<html><body>
<h2>CHAPTER I — One</h2>
<p>Leading <em>emphasis</em> is not accepted.</p>
</body></html>`
		_, _, err := Extract(strings.NewReader(doc), testDocConfig(), log)
		var ee *ExtractionError
		if !errors.As(err, &ee) {
			t.Fatalf("expected extraction error, got %v", err)
		}
	})

	t.Run("rejects_unparsable_heading", func(t *testing.T) {
		doc := `<html><body>
<h2>CHAPTER I</h2>
<p>No separator in the heading above.</p>
</body></html>`
		_, _, err := Extract(strings.NewReader(doc), testDocConfig(), log)
		var ee *ExtractionError
		if !errors.As(err, &ee) {
			t.Fatalf("expected extraction error, got %v", err)
		}
	})

	t.Run("accepts_text_less_elements", func(t *testing.T) {
		doc := `<html><body>
<h2>CHAPTER I — One</h2>
<p>Fine.</p>
<br/>
<hr/>
<div id="marker"></div>
</body></html>`
		model, _, err := Extract(strings.NewReader(doc), testDocConfig(), log)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if len(model.Chapters) != 1 || len(model.Chapters[0].Blocks) != 1 {
			t.Fatalf("unexpected model shape: %+v", model.Chapters)
		}
		// text-less identified element survives as an anchor
		found := false
		for _, a := range model.Chapters[0].Anchors {
			if a == "marker" {
				found = true
			}
		}
		if !found {
			t.Fatalf("anchor from text-less element lost: %v", model.Chapters[0].Anchors)
		}
	})
}

func TestExtractMissingBookmark(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	// the reference sits in front matter, before strict mode engages
	doc := `<html><body>
<p><a href="#intro">the introduction</a></p>
<h2 id="present">CHAPTER I — One</h2>
</body></html>`

	model, idx, err := Extract(strings.NewReader(doc), testDocConfig(), log)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	err = idx.Validate(model)
	var mbe *MissingBookmarkError
	if !errors.As(err, &mbe) {
		t.Fatalf("expected missing bookmark error, got %v", err)
	}
	if len(mbe.IDs) != 1 || mbe.IDs[0] != "intro" {
		t.Fatalf("unexpected missing ids: %v", mbe.IDs)
	}
}

func TestValidateAcceptsChapterBookmarks(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	// references to the synthesized chapter bookmarks are always resolvable
	doc := `<html><body>
<p><a href="#chapter_1">Chapter One</a></p>
<h2>CHAPTER I — One</h2>
</body></html>`

	model, idx, err := Extract(strings.NewReader(doc), testDocConfig(), log)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if err := idx.Validate(model); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
