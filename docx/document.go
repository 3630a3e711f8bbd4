package docx

import (
	"github.com/beevik/etree"

	"github.com/Shane32/BookConverter/config"
)

// SectionStart selects how a section begins. Parity enforcement lives here:
// odd and even page breaks make the renderer insert a blank physical page
// whenever the natural next page does not match.
type SectionStart int

const (
	SectionStartNextPage SectionStart = iota
	SectionStartOddPage
	SectionStartEvenPage
)

func (s SectionStart) breakType() string {
	switch s {
	case SectionStartOddPage:
		return "oddPage"
	case SectionStartEvenPage:
		return "evenPage"
	}
	return ""
}

// HeaderType distinguishes the three header slots a section may carry.
type HeaderType int

const (
	HeaderFirst HeaderType = iota
	HeaderDefault
	HeaderEven
)

func (t HeaderType) refType() string {
	switch t {
	case HeaderFirst:
		return "first"
	case HeaderEven:
		return "even"
	}
	return "default"
}

// Document accumulates sections and is serialized once by Save.
type Document struct {
	page     config.PageConfig
	styles   []config.StyleConfig
	sections []*Section

	title   string
	creator string
	lang    string
}

func NewDocument(page config.PageConfig, styles []config.StyleConfig) *Document {
	return &Document{page: page, styles: styles}
}

// SetCoreProperties records document metadata for the package properties
// parts.
func (d *Document) SetCoreProperties(title, creator string) {
	d.title, d.creator = title, creator
}

// SetLanguage stamps the proofing language into the style defaults.
func (d *Document) SetLanguage(lang string) {
	d.lang = lang
}

// AddSection opens a new page-breaking section. All content added afterwards
// belongs to it until the next AddSection call.
func (d *Document) AddSection(start SectionStart) *Section {
	s := &Section{doc: d, start: start}
	d.sections = append(d.sections, s)
	return s
}

// Section is one page-breaking unit with its own headers and numbering.
type Section struct {
	doc     *Document
	start   SectionStart
	center  bool
	restart bool
	headers [3]*Header
	paras   []*Paragraph
}

// SetCenterVertical centers the section content vertically on the page.
func (s *Section) SetCenterVertical(on bool) {
	s.center = on
}

// SetRestartNumbering makes page numbering start at 1 in this section.
// Without it numbering continues from the previous section.
func (s *Section) SetRestartNumbering(on bool) {
	s.restart = on
}

func (s *Section) AddParagraph(style string) *Paragraph {
	p := newParagraph(style)
	s.paras = append(s.paras, p)
	return p
}

// Header returns the header of the given type, creating an empty one on
// first use. A section without headers of some type inherits nothing, the
// slot simply stays blank.
func (s *Section) Header(t HeaderType) *Header {
	if s.headers[t] == nil {
		s.headers[t] = &Header{}
	}
	return s.headers[t]
}

// buildSectPr serializes section properties, registering header parts as it
// goes. Child order follows the WML schema.
func (s *Section) buildSectPr(d *Document, hdrs *headerParts) *etree.Element {

	sp := etree.NewElement("w:sectPr")

	for _, t := range []HeaderType{HeaderFirst, HeaderDefault, HeaderEven} {
		h := s.headers[t]
		if h == nil {
			continue
		}
		ref := sp.CreateElement("w:headerReference")
		ref.CreateAttr("w:type", t.refType())
		ref.CreateAttr("r:id", hdrs.add(h))
	}

	if bt := s.start.breakType(); bt != "" {
		sp.CreateElement("w:type").CreateAttr("w:val", bt)
	}

	pgSz := sp.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", twips(d.page.Width))
	pgSz.CreateAttr("w:h", twips(d.page.Height))

	// left is the inside margin, right the outside one; the mirror margins
	// document setting swaps them on verso pages
	pgMar := sp.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", twips(d.page.MarginTop))
	pgMar.CreateAttr("w:right", twips(d.page.MarginOutside))
	pgMar.CreateAttr("w:bottom", twips(d.page.MarginBottom))
	pgMar.CreateAttr("w:left", twips(d.page.MarginInside))
	pgMar.CreateAttr("w:header", twips(d.page.HeaderDistance))
	pgMar.CreateAttr("w:footer", twips(0.5))
	pgMar.CreateAttr("w:gutter", "0")

	if s.restart {
		sp.CreateElement("w:pgNumType").CreateAttr("w:start", "1")
	}

	vAlign := "top"
	if s.center {
		vAlign = "center"
	}
	sp.CreateElement("w:vAlign").CreateAttr("w:val", vAlign)

	// every section distinguishes its first page header
	sp.CreateElement("w:titlePg")

	return sp
}

// Header holds the paragraphs of one header slot.
type Header struct {
	paras []*Paragraph
}

func (h *Header) AddParagraph(style string) *Paragraph {
	p := newParagraph(style)
	h.paras = append(h.paras, p)
	return p
}
