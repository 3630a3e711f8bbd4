package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Shane32/BookConverter/config"
)

// Classification pre-pass. Source markup is flattened into an ordered
// sequence of classified nodes before any validation runs, so strict mode and
// chapter segmentation operate on a simple list instead of a live tree walk.

var (
	// loose filter deciding whether a heading belongs to the chapter list
	chapterFilterRe = regexp.MustCompile(`(?i)CHAPTER\s+[IVXLCDM]+`)
	// full heading shape, em-dash separator
	chapterHeadingRe = regexp.MustCompile(`(?i)^CHAPTER\s+([IVXLCDM]+)\s+—\s+(.+)$`)
	authorRe         = regexp.MustCompile(`(?i)by\s+(.+)`)
)

// node is one entry of the flat classified sequence.
type node struct {
	kind NodeKind
	id   string
	text string // normalized visible text of the subtree
	el   *html.Node
}

func classifyElement(n *html.Node, strict *config.StrictConfig) node {
	out := node{kind: NodeKindOther, id: attrValue(n, "id"), el: n}
	if n.DataAtom != atom.Br && n.DataAtom != atom.Hr {
		// br and hr are never text-bearing no matter what the parser
		// attached under them
		out.text = NormalizeWhitespace(collectText(n))
	}

	switch n.DataAtom {
	case atom.H1:
		out.kind = NodeKindTitle
	case atom.H2:
		switch {
		case chapterFilterRe.MatchString(out.text):
			out.kind = NodeKindChapterHeading
		case directTextContains(n, "by"):
			out.kind = NodeKindAuthor
		}
	case atom.H3:
		out.kind = NodeKindSubtitle
		for _, m := range strict.EndMarkers {
			if out.text == m {
				out.kind = NodeKindEndMarker
				break
			}
		}
	case atom.P:
		out.kind = NodeKindParagraph
	case atom.Pre:
		out.kind = NodeKindQuote
	case atom.Section:
		for _, m := range strict.FooterMarkers {
			if strings.Contains(out.text, m) {
				out.kind = NodeKindFooter
				break
			}
		}
	}
	return out
}

// linearize flattens the sibling chain starting at first into classified
// nodes. Loose text and comments between elements carry no structure and are
// skipped.
func linearize(first *html.Node, strict *config.StrictConfig) []node {
	var out []node
	for c := first; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		out = append(out, classifyElement(c, strict))
	}
	return out
}

// walk visits every element of the tree in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// collectText concatenates all text nodes of the subtree, unnormalized.
func collectText(n *html.Node) string {
	var b strings.Builder
	var rec func(*html.Node)
	rec = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			rec(g)
		}
	}
	rec(n)
	return b.String()
}

// directTextContains reports whether the element's only child is a text node
// containing sub, case-insensitively.
func directTextContains(n *html.Node, sub string) bool {
	c := n.FirstChild
	if c == nil || c.NextSibling != nil || c.Type != html.TextNode {
		return false
	}
	return strings.Contains(strings.ToLower(c.Data), sub)
}
