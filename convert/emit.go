package convert

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/Shane32/BookConverter/config"
	"github.com/Shane32/BookConverter/content"
	"github.com/Shane32/BookConverter/docx"
	"github.com/Shane32/BookConverter/extract"
	"github.com/Shane32/BookConverter/plan"
)

// Style table names the emitter relies on. The attributes behind them come
// from configuration, only the names are fixed.
const (
	styleNormal            = "Normal"
	styleQuote             = "Quote"
	styleBookTitle         = "BookTitle"
	styleBookSubtitle      = "BookSubtitle"
	styleChapterNumber     = "ChapterNumber"
	styleChapterTitle      = "ChapterTitle"
	styleTOCHeading        = "TOCHeading"
	styleTOCEntry          = "TOC Entry"
	stylePageHeader        = "PageHeader"
	styleDedicationTo      = "DedicationTo"
	styleDedicationFrom    = "DedicationFrom"
	styleDedicationCredits = "DedicationCredits"
)

// RenderError wraps a failure of the document generation stage.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// emitter drives the document builder over one render run. The bookmark id
// sequence is owned here, one counter per run, so concurrent or repeated
// renders never share state.
type emitter struct {
	doc          *docx.Document
	cfg          *config.DocumentConfig
	log          *zap.Logger
	nextBookmark int
}

// Render consumes the section plan and the model, drives the document
// builder and saves the result. Any builder rejection aborts the run, a
// partially written output file is not usable.
func Render(model *content.Model, sections []plan.Section, cfg *config.DocumentConfig, outputPath string, log *zap.Logger) error {

	if err := checkStyles(model, cfg); err != nil {
		return err
	}

	e := &emitter{doc: docx.NewDocument(cfg.Page, cfg.Styles), cfg: cfg, log: log}
	e.doc.SetCoreProperties(model.Book.Title, model.Book.Author)
	if model.Book.Lang != language.Und {
		e.doc.SetLanguage(model.Book.Lang.String())
	}

	for i := range sections {
		s := &sections[i]

		sec := e.doc.AddSection(sectionStart(s.StartParity))
		sec.SetCenterVertical(s.CenterVertical)
		sec.SetRestartNumbering(s.ResetNumbering)
		if !s.HideHeaders {
			e.setupHeaders(sec, s)
		}

		var err error
		switch s.Kind {
		case plan.SectionKindTitle:
			e.titlePage(sec, &model.Book)
		case plan.SectionKindDedication:
			e.dedicationPage(sec, model.Dedication)
		case plan.SectionKindToc:
			err = e.tableOfContents(sec, model.Chapters)
		case plan.SectionKindBlank:
			// intentionally empty page
		case plan.SectionKindChapter:
			err = e.chapter(sec, s)
		}
		if err != nil {
			return err
		}
	}

	if err := e.doc.Save(outputPath, cfg.FixZip); err != nil {
		return &RenderError{Op: "save", Err: err}
	}
	return nil
}

func checkStyles(model *content.Model, cfg *config.DocumentConfig) error {
	required := []string{
		styleNormal, styleQuote, styleBookTitle, styleBookSubtitle,
		styleChapterNumber, styleChapterTitle, styleTOCHeading,
		styleTOCEntry, stylePageHeader,
	}
	if model.Dedication != nil {
		required = append(required, styleDedicationTo, styleDedicationFrom, styleDedicationCredits)
	}

	var missing []string
	for _, name := range required {
		if cfg.Style(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &RenderError{Op: "styles", Err: fmt.Errorf("style table is missing: %s", strings.Join(missing, ", "))}
	}
	return nil
}

func sectionStart(p plan.StartParity) docx.SectionStart {
	switch p {
	case plan.StartParityOdd:
		return docx.SectionStartOddPage
	case plan.StartParityEven:
		return docx.SectionStartEvenPage
	}
	return docx.SectionStartNextPage
}

// setupHeaders populates the three header slots. First page of a section
// shows the page number only; recto pages carry title then page number
// right-aligned as a unit, verso pages page number then title left-aligned.
func (e *emitter) setupHeaders(sec *docx.Section, s *plan.Section) {

	first := sec.Header(docx.HeaderFirst).AddParagraph(stylePageHeader)
	if s.StartParity == plan.StartParityEven {
		first.SetAlignment("left")
	} else {
		first.SetAlignment("right")
	}
	first.AddPageNumberField()

	odd := sec.Header(docx.HeaderDefault).AddParagraph(stylePageHeader)
	odd.SetAlignment("right")
	odd.AddText(s.HeaderTitle)
	odd.AddTab()
	odd.AddPageNumberField()

	if s.HideEvenHeader {
		return
	}
	even := sec.Header(docx.HeaderEven).AddParagraph(stylePageHeader)
	even.SetAlignment("left")
	even.AddPageNumberField()
	even.AddTab()
	even.AddText(s.HeaderTitle)
}

func (e *emitter) titlePage(sec *docx.Section, book *content.Book) {
	sec.AddParagraph(styleBookTitle).AddText(strings.ToUpper(book.Title))
	if book.Subtitle != "" {
		sec.AddParagraph(styleBookSubtitle).AddText(book.Subtitle)
	}
	if book.Author != "" {
		sec.AddParagraph(styleBookSubtitle).AddText("by " + book.Author)
	}
}

func (e *emitter) dedicationPage(sec *docx.Section, d *content.Dedication) {
	if d.To != "" {
		sec.AddParagraph(styleDedicationTo).AddText(d.To)
	}
	if d.From != "" {
		sec.AddParagraph(styleDedicationFrom).AddText(d.From)
	}
	if len(d.Credits) > 0 {
		// extra spacing between dedication and credits
		sec.AddParagraph(styleDedicationFrom)
		for _, credit := range d.Credits {
			sec.AddParagraph(styleDedicationCredits).AddText(credit)
		}
	}
}

// tableOfContents emits one entry per chapter in chapter-list order, each
// with a forward page reference resolved by the renderer.
func (e *emitter) tableOfContents(sec *docx.Section, chapters []content.Chapter) error {
	sec.AddParagraph(styleTOCHeading).AddText(e.cfg.TOC.Title)

	for i := range chapters {
		ch := &chapters[i]
		numeral, err := extract.ToRoman(ch.Number)
		if err != nil {
			return &RenderError{Op: "toc entry", Err: err}
		}

		p := sec.AddParagraph(styleTOCEntry)
		switch e.cfg.TOC.EntryStyle {
		case config.TOCEntryStyleChapter:
			p.AddText("Chapter " + numeral)
		default:
			p.AddText(numeral + ".")
		}
		p.AddTab()
		p.AddText(plan.TitleCase(ch.Title))
		p.AddTab()
		p.AddPageRef(content.ChapterBookmark(ch.Number))
	}
	return nil
}

func (e *emitter) chapter(sec *docx.Section, s *plan.Section) error {
	ch := s.Chapter

	numeral, err := extract.ToRoman(ch.Number)
	if err != nil {
		return &RenderError{Op: "chapter heading", Err: err}
	}

	num := sec.AddParagraph(styleChapterNumber)
	num.AddText("CHAPTER " + numeral)
	e.bookmark(num, content.ChapterBookmark(ch.Number))
	for _, a := range ch.Anchors {
		e.bookmark(num, a)
	}

	sec.AddParagraph(styleChapterTitle).AddText(s.HeaderTitle)

	for _, b := range ch.Blocks {
		style := styleNormal
		if b.Kind == content.BlockKindQuote {
			style = styleQuote
		}
		p := sec.AddParagraph(style)
		p.AddText(b.Text)
		if b.Anchor != "" {
			e.bookmark(p, b.Anchor)
		}
	}

	e.log.Debug("Emitted chapter", zap.Int("number", ch.Number), zap.Int("blocks", len(ch.Blocks)))
	return nil
}

// bookmark emits a paired anchor under the next run-scoped numeric id.
func (e *emitter) bookmark(p *docx.Paragraph, name string) {
	p.AddBookmark(e.nextBookmark, content.SanitizeBookmark(name))
	e.nextBookmark++
}
