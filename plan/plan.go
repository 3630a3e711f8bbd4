// Package plan computes the ordered sequence of page-breaking sections for a
// book model. The planner decides parity, header content and numbering; the
// emitter consumes each entry exactly once and never re-derives any of it.
package plan

import (
	"go.uber.org/zap"

	"github.com/Shane32/BookConverter/config"
	"github.com/Shane32/BookConverter/content"
)

// Section is one page-breaking unit of the output document.
type Section struct {
	Kind        SectionKind
	StartParity StartParity
	// HeaderTitle is the display form of the chapter title, already
	// title-cased
	HeaderTitle    string
	HideHeaders    bool
	HideEvenHeader bool
	ResetNumbering bool
	CenterVertical bool
	// Chapter points into the model for chapter body sections, nil otherwise
	Chapter *content.Chapter
}

// Build computes the section plan in emission order: title page, optional
// dedication, table of contents, then chapters. Every chapter body starts on
// a recto page, that is a hard invariant. A blank verso section precedes a
// chapter when configured to, and always precedes the first chapter. The
// first chapter resets page numbering and suppresses the verso header since
// no even page of it exists yet.
func Build(model *content.Model, cfg *config.DocumentConfig, log *zap.Logger) []Section {

	sections := make([]Section, 0, 3+2*len(model.Chapters))

	sections = append(sections, Section{
		Kind:           SectionKindTitle,
		StartParity:    StartParityNone,
		HideHeaders:    true,
		CenterVertical: true,
	})

	if model.Dedication != nil {
		sections = append(sections, Section{
			Kind:           SectionKindDedication,
			StartParity:    StartParityOdd,
			HideHeaders:    true,
			CenterVertical: true,
		})
	}

	sections = append(sections, Section{
		Kind:        SectionKindToc,
		StartParity: StartParityOdd,
		HeaderTitle: cfg.TOC.Title,
		HideHeaders: true,
	})

	for i := range model.Chapters {
		ch := &model.Chapters[i]
		first := i == 0
		title := TitleCase(ch.Title)

		if cfg.ForceBlankVersoPages || first {
			sections = append(sections, Section{
				Kind:        SectionKindBlank,
				StartParity: StartParityEven,
				HeaderTitle: title,
				HideHeaders: first,
			})
		}
		sections = append(sections, Section{
			Kind:           SectionKindChapter,
			StartParity:    StartParityOdd,
			HeaderTitle:    title,
			ResetNumbering: first,
			HideEvenHeader: first,
			Chapter:        ch,
		})
	}

	log.Debug("Computed section plan",
		zap.Int("sections", len(sections)),
		zap.Int("chapters", len(model.Chapters)),
		zap.Bool("force_blank_verso", cfg.ForceBlankVersoPages))
	return sections
}
