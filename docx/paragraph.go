package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Paragraph wraps one w:p element being built. Runs are appended in call
// order after the paragraph properties.
type Paragraph struct {
	p   *etree.Element
	pPr *etree.Element
}

func newParagraph(style string) *Paragraph {
	p := etree.NewElement("w:p")
	pPr := p.CreateElement("w:pPr")
	if style != "" {
		pPr.CreateElement("w:pStyle").CreateAttr("w:val", styleID(style))
	}
	return &Paragraph{p: p, pPr: pPr}
}

// SetAlignment overrides the style's paragraph alignment.
func (p *Paragraph) SetAlignment(align string) {
	p.pPr.CreateElement("w:jc").CreateAttr("w:val", jcVal(align))
}

// AddText appends a plain text run.
func (p *Paragraph) AddText(text string) {
	r := p.p.CreateElement("w:r")
	t := r.CreateElement("w:t")
	if text != strings.TrimSpace(text) {
		t.CreateAttr("xml:space", "preserve")
	}
	t.SetText(text)
}

// AddTab appends a tab run.
func (p *Paragraph) AddTab() {
	p.p.CreateElement("w:r").CreateElement("w:tab")
}

// AddBookmark attaches a paired start/end anchor under the given name. The
// numeric id must be unique within the document, uniqueness is owned by the
// caller.
func (p *Paragraph) AddBookmark(id int, name string) {
	start := p.p.CreateElement("w:bookmarkStart")
	start.CreateAttr("w:id", strconv.Itoa(id))
	start.CreateAttr("w:name", name)
	p.p.CreateElement("w:bookmarkEnd").CreateAttr("w:id", strconv.Itoa(id))
}
