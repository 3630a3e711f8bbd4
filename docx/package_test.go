package docx

import (
	"archive/zip"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"

	"github.com/Shane32/BookConverter/config"
)

func testPage() config.PageConfig {
	return config.PageConfig{
		Width:          6.0,
		Height:         9.0,
		MarginTop:      1.0,
		MarginBottom:   1.0,
		MarginInside:   1.0,
		MarginOutside:  0.75,
		HeaderDistance: 0.5,
		MirrorMargins:  true,
	}
}

func testStyles() []config.StyleConfig {
	firstLine := 0.25
	return []config.StyleConfig{
		{Name: "Normal", Font: "Book Antiqua", SizePt: 11, Align: "justify", LineSpacing: 1.15, FirstLineIndentIn: &firstLine},
		{Name: "Page Header", Font: "Book Antiqua", SizePt: 9, Italic: true,
			Tabs: []config.TabStopConfig{{PositionIn: 4.25, Align: "right", Leader: "dot"}}},
	}
}

func saveTestDocument(t *testing.T, build func(d *Document)) string {
	t.Helper()

	d := NewDocument(testPage(), testStyles())
	d.SetCoreProperties("The Book", "Jane Roe")
	build(d)

	path := filepath.Join(t.TempDir(), "out.docx")
	if err := d.Save(path, false); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func readPart(t *testing.T, path, name string) *etree.Document {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		r, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", name, err)
		}
		defer r.Close()
		doc := etree.NewDocument()
		if _, err := doc.ReadFrom(r); err != nil {
			t.Fatalf("parse part %s: %v", name, err)
		}
		return doc
	}
	t.Fatalf("part %s not found in package", name)
	return nil
}

func TestSavePartInventory(t *testing.T) {
	path := saveTestDocument(t, func(d *Document) {
		s := d.AddSection(SectionStartNextPage)
		s.AddParagraph("Normal").AddText("hello")
		s.Header(HeaderDefault).AddParagraph("Page Header").AddPageNumberField()
	})

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	defer zr.Close()

	found := map[string]bool{}
	for _, f := range zr.File {
		found[f.Name] = true
	}
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/settings.xml",
		"word/header1.xml",
		"docProps/core.xml",
		"docProps/app.xml",
	} {
		if !found[name] {
			t.Fatalf("part %s missing, have %v", name, found)
		}
	}
}

func TestSaveSectionProperties(t *testing.T) {
	path := saveTestDocument(t, func(d *Document) {
		first := d.AddSection(SectionStartNextPage)
		first.SetCenterVertical(true)
		first.AddParagraph("Normal").AddText("title page")

		second := d.AddSection(SectionStartOddPage)
		second.SetRestartNumbering(true)
		second.AddParagraph("Normal").AddText("chapter")
	})

	doc := readPart(t, path, "word/document.xml")

	// etree descendant search is breadth-first; the assertions below index by
	// document order, so collect sectPr elements with a depth-first walk
	var sectPrs []*etree.Element
	var collect func(e *etree.Element)
	collect = func(e *etree.Element) {
		if e.Tag == "sectPr" {
			sectPrs = append(sectPrs, e)
		}
		for _, c := range e.ChildElements() {
			collect(c)
		}
	}
	collect(doc.Root())
	if len(sectPrs) != 2 {
		t.Fatalf("expected 2 sectPr elements, got %d", len(sectPrs))
	}

	// non-final section properties ride inside a trailing paragraph
	if sectPrs[0].Parent().Tag != "pPr" {
		t.Fatalf("first sectPr not embedded in paragraph properties, parent is %s", sectPrs[0].Parent().Tag)
	}
	if sectPrs[1].Parent().Tag != "body" {
		t.Fatalf("final sectPr not at body level, parent is %s", sectPrs[1].Parent().Tag)
	}

	pgSz := sectPrs[0].SelectElement("w:pgSz")
	if pgSz == nil || pgSz.SelectAttrValue("w:w", "") != "8640" || pgSz.SelectAttrValue("w:h", "") != "12960" {
		t.Fatalf("unexpected page size: %v", pgSz)
	}
	pgMar := sectPrs[0].SelectElement("w:pgMar")
	if pgMar == nil || pgMar.SelectAttrValue("w:left", "") != "1440" || pgMar.SelectAttrValue("w:right", "") != "1080" {
		t.Fatalf("unexpected margins: %v", pgMar)
	}

	if sectPrs[0].SelectElement("w:type") != nil {
		t.Fatal("first section should not carry a break type")
	}
	if v := sectPrs[0].SelectElement("w:vAlign").SelectAttrValue("w:val", ""); v != "center" {
		t.Fatalf("first section vAlign = %q", v)
	}

	if v := sectPrs[1].SelectElement("w:type").SelectAttrValue("w:val", ""); v != "oddPage" {
		t.Fatalf("second section break type = %q", v)
	}
	pgNumType := sectPrs[1].SelectElement("w:pgNumType")
	if pgNumType == nil || pgNumType.SelectAttrValue("w:start", "") != "1" {
		t.Fatal("second section does not restart numbering")
	}
}

func TestSaveSettings(t *testing.T) {
	path := saveTestDocument(t, func(d *Document) {
		d.AddSection(SectionStartNextPage).AddParagraph("Normal").AddText("x")
	})

	doc := readPart(t, path, "word/settings.xml")
	root := doc.Root()

	if root.SelectElement("w:mirrorMargins") == nil {
		t.Fatal("mirrorMargins missing")
	}
	if root.SelectElement("w:evenAndOddHeaders") == nil {
		t.Fatal("evenAndOddHeaders missing")
	}
	docID := root.SelectElement("w15:docId")
	if docID == nil || len(docID.SelectAttrValue("w15:val", "")) != 38 {
		t.Fatalf("unexpected docId: %v", docID)
	}
}

func TestPageRefFieldShape(t *testing.T) {
	path := saveTestDocument(t, func(d *Document) {
		s := d.AddSection(SectionStartNextPage)
		p := s.AddParagraph("Normal")
		p.AddText("The New Home")
		p.AddPageRef("chapter_1")
	})

	doc := readPart(t, path, "word/document.xml")

	instr := doc.FindElement("//w:instrText")
	if instr == nil {
		t.Fatal("instrText missing")
	}
	if got := instr.Text(); got != ` PAGEREF chapter_1 \h ` {
		t.Fatalf("unexpected field instruction: %q", got)
	}
	if instr.SelectAttrValue("xml:space", "") != "preserve" {
		t.Fatal("field instruction does not preserve spaces")
	}

	var types []string
	for _, fc := range doc.FindElements("//w:fldChar") {
		types = append(types, fc.SelectAttrValue("w:fldCharType", ""))
	}
	if len(types) != 3 || types[0] != "begin" || types[1] != "separate" || types[2] != "end" {
		t.Fatalf("unexpected field character sequence: %v", types)
	}
}

func TestSaveBookmarks(t *testing.T) {
	path := saveTestDocument(t, func(d *Document) {
		s := d.AddSection(SectionStartNextPage)
		p := s.AddParagraph("Normal")
		p.AddText("CHAPTER I")
		p.AddBookmark(0, "chapter_1")
	})

	doc := readPart(t, path, "word/document.xml")

	start := doc.FindElement("//w:bookmarkStart")
	if start == nil || start.SelectAttrValue("w:name", "") != "chapter_1" || start.SelectAttrValue("w:id", "") != "0" {
		t.Fatalf("unexpected bookmarkStart: %v", start)
	}
	end := doc.FindElement("//w:bookmarkEnd")
	if end == nil || end.SelectAttrValue("w:id", "") != "0" {
		t.Fatalf("unexpected bookmarkEnd: %v", end)
	}
	if end.SelectAttr("w:name") != nil {
		t.Fatal("bookmarkEnd must not carry a name")
	}
}

func TestSaveStyles(t *testing.T) {
	path := saveTestDocument(t, func(d *Document) {
		d.AddSection(SectionStartNextPage).AddParagraph("Normal").AddText("x")
	})

	doc := readPart(t, path, "word/styles.xml")

	styles := doc.FindElements("//w:style")
	if len(styles) != 2 {
		t.Fatalf("expected 2 styles, got %d", len(styles))
	}

	normal := styles[0]
	if normal.SelectAttrValue("w:styleId", "") != "Normal" || normal.SelectAttrValue("w:default", "") != "1" {
		t.Fatalf("unexpected Normal style element: %v", normal)
	}
	rPr := normal.SelectElement("w:rPr")
	if sz := rPr.SelectElement("w:sz").SelectAttrValue("w:val", ""); sz != "22" {
		t.Fatalf("Normal size = %q half-points, want 22", sz)
	}
	spacing := normal.SelectElement("w:pPr").SelectElement("w:spacing")
	if spacing == nil || spacing.SelectAttrValue("w:line", "") != "276" {
		t.Fatalf("unexpected Normal line spacing: %v", spacing)
	}

	header := styles[1]
	if header.SelectAttrValue("w:styleId", "") != "PageHeader" {
		t.Fatalf("style id not stripped of spaces: %q", header.SelectAttrValue("w:styleId", ""))
	}
	tab := header.SelectElement("w:pPr").SelectElement("w:tabs").SelectElement("w:tab")
	if tab == nil || tab.SelectAttrValue("w:pos", "") != "6120" || tab.SelectAttrValue("w:leader", "") != "dot" {
		t.Fatalf("unexpected header tab stop: %v", tab)
	}
}
