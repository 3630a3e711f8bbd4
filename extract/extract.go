// Package extract turns semi-structured narrative markup into the normalized
// book model. Validation is deliberately unforgiving: once the first chapter
// heading is seen the rest of the document must consist of recognized shapes
// only, anything else aborts the run.
package extract

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/language"

	"github.com/Shane32/BookConverter/config"
	"github.com/Shane32/BookConverter/content"
)

// Extract parses source markup and produces the book model along with the
// bookmark index built from the unfiltered tree. Metadata fields which cannot
// be located are left empty, a chapter heading which cannot be parsed is
// fatal.
func Extract(r io.Reader, cfg *config.DocumentConfig, log *zap.Logger) (*content.Model, *SourceIndex, error) {

	cr, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, nil, fmt.Errorf("unable to detect source encoding: %w", err)
	}
	root, err := html.Parse(cr)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse source markup: %w", err)
	}

	idx := buildSourceIndex(root)

	model := &content.Model{}
	headings := scanDocument(root, &cfg.Strict, model, log)
	log.Debug("Located chapter headings", zap.Int("count", len(headings)))

	for _, h := range headings {
		ch, err := extractChapter(h, &cfg.Strict, log)
		if err != nil {
			return nil, nil, err
		}
		model.Chapters = append(model.Chapters, *ch)
	}
	return model, idx, nil
}

// scanDocument performs the single metadata pass over the whole tree: first
// title, subtitle and author headings win, chapter headings are collected in
// document order.
func scanDocument(root *html.Node, strict *config.StrictConfig, model *content.Model, log *zap.Logger) []node {

	var (
		headings                          []node
		haveTitle, haveSubtitle, haveAuth bool
	)

	walk(root, func(n *html.Node) {
		if n.Data == "html" {
			if l := attrValue(n, "lang"); l != "" {
				if tag, err := language.Parse(l); err == nil {
					model.Book.Lang = tag
				} else {
					log.Warn("Ignoring unparsable source language", zap.String("lang", l))
				}
			}
			return
		}

		nd := classifyElement(n, strict)
		switch nd.kind {
		case NodeKindTitle:
			if !haveTitle {
				haveTitle = true
				model.Book.Title = nd.text
				log.Debug("Found book title", zap.String("title", nd.text))
			}
		case NodeKindSubtitle:
			if !haveSubtitle {
				haveSubtitle = true
				model.Book.Subtitle = nd.text
				log.Debug("Found book subtitle", zap.String("subtitle", nd.text))
			}
		case NodeKindAuthor:
			if !haveAuth {
				haveAuth = true
				if m := authorRe.FindStringSubmatch(nd.text); m != nil {
					model.Book.Author = strings.TrimSpace(m[1])
					log.Debug("Found book author", zap.String("author", model.Book.Author))
				}
			}
		case NodeKindChapterHeading:
			headings = append(headings, nd)
		}
	})
	return headings
}

// extractChapter parses the heading and consumes the classified sibling chain
// up to the next chapter heading. Strict mode is in effect for the whole
// range: every text-bearing element which is not a paragraph or quote block
// is fatal, except the configured end and footer markers which are skipped.
func extractChapter(heading node, strict *config.StrictConfig, log *zap.Logger) (*content.Chapter, error) {

	m := chapterHeadingRe.FindStringSubmatch(heading.text)
	if m == nil {
		return nil, extractionErrorf("unable to parse chapter heading: %s", heading.text)
	}
	number, err := FromRoman(m[1])
	if err != nil {
		return nil, err
	}

	ch := &content.Chapter{Number: number, Title: strings.TrimSpace(m[2])}
	if heading.id != "" {
		ch.Anchors = append(ch.Anchors, heading.id)
	}
	log.Debug("Extracting chapter", zap.Int("number", number), zap.String("title", ch.Title))

	for _, nd := range linearize(heading.el.NextSibling, strict) {
		if nd.kind == NodeKindChapterHeading {
			break
		}
		switch nd.kind {
		case NodeKindParagraph, NodeKindQuote:
			if nd.text == "" {
				// not an error - but an identifier must survive as a
				// bookmark target even when the block itself is dropped
				if nd.id != "" {
					ch.Anchors = append(ch.Anchors, nd.id)
				}
				continue
			}
			if err := validateLeaf(nd.el); err != nil {
				return nil, err
			}
			kind := content.BlockKindParagraph
			if nd.kind == NodeKindQuote {
				kind = content.BlockKindQuote
			}
			ch.Blocks = append(ch.Blocks, content.Block{Kind: kind, Text: nd.text, Anchor: nd.id})
		case NodeKindEndMarker:
			log.Debug("Found end marker, skipping", zap.String("text", nd.text))
		case NodeKindFooter:
			log.Debug("Found trailing boilerplate footer, skipping")
		default:
			if nd.text != "" {
				return nil, extractionErrorf("unrecognized element <%s> contains text: %s", nd.el.Data, snippet(nd.text))
			}
			if nd.id != "" {
				ch.Anchors = append(ch.Anchors, nd.id)
			}
		}
	}
	return ch, nil
}

// Accepted blocks must be leaves: any nested element is a violation even when
// it adds no visible text of its own.
func validateLeaf(n *html.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return extractionErrorf("unrecognized element <%s> found inside <%s>", c.Data, n.Data)
		}
	}
	return nil
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) <= 30 {
		return s
	}
	return string(r[:30]) + "..."
}
