package extract

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/Shane32/BookConverter/content"
)

// SourceIndex tracks bookmark identifiers across the whole source. It is
// built from the unfiltered parse tree before extraction drops anything, so
// link targets living on text-less elements are still accounted for.
type SourceIndex struct {
	// fragments of internal hyperlinks, each must resolve to a bookmark
	Required map[string]struct{}
	// identifiers present on source elements
	Discovered map[string]struct{}
}

func buildSourceIndex(root *html.Node) *SourceIndex {
	idx := &SourceIndex{
		Required:   make(map[string]struct{}),
		Discovered: make(map[string]struct{}),
	}
	walk(root, func(n *html.Node) {
		if id := attrValue(n, "id"); id != "" {
			idx.Discovered[id] = struct{}{}
		}
		if href := attrValue(n, "href"); strings.HasPrefix(href, "#") && len(href) > 1 {
			idx.Required[href[1:]] = struct{}{}
		}
	})
	return idx
}

// Validate checks that every link target either exists in the source or is
// one of the bookmarks synthesized for the model's chapters. Runs strictly
// before any rendering work. The returned MissingBookmarkError carries the
// full sorted list of dangling targets, not the first one found.
func (idx *SourceIndex) Validate(model *content.Model) error {
	known := make(map[string]struct{}, len(idx.Discovered)+len(model.Chapters))
	for id := range idx.Discovered {
		known[id] = struct{}{}
	}
	for _, ch := range model.Chapters {
		known[content.ChapterBookmark(ch.Number)] = struct{}{}
	}

	var missing []string
	for id := range idx.Required {
		if _, exists := known[id]; !exists {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingBookmarkError{IDs: missing}
}
