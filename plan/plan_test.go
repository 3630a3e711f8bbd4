package plan

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/Shane32/BookConverter/config"
	"github.com/Shane32/BookConverter/content"
)

func planModel(chapters int) *content.Model {
	m := &content.Model{Book: content.Book{Title: "The Book", Author: "Jane Roe"}}
	for i := 1; i <= chapters; i++ {
		m.Chapters = append(m.Chapters, content.Chapter{Number: i, Title: "a chapter title"})
	}
	return m
}

func planConfig(forceBlank bool) *config.DocumentConfig {
	return &config.DocumentConfig{
		ForceBlankVersoPages: forceBlank,
		TOC:                  config.TOCConfig{Title: "Contents"},
	}
}

func TestBuildSectionOrder(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	model := planModel(2)
	model.Dedication = &content.Dedication{To: "reader"}

	sections := Build(model, planConfig(false), log)

	want := []SectionKind{
		SectionKindTitle,
		SectionKindDedication,
		SectionKindToc,
		SectionKindBlank, // first chapter is always preceded by a blank verso
		SectionKindChapter,
		SectionKindChapter,
	}
	if len(sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(sections))
	}
	for i, k := range want {
		if sections[i].Kind != k {
			t.Fatalf("section %d: expected %v, got %v", i, k, sections[i].Kind)
		}
	}
}

func TestBuildChapterParity(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	for _, force := range []bool{false, true} {
		sections := Build(planModel(4), planConfig(force), log)
		for i, s := range sections {
			if s.Kind == SectionKindChapter && s.StartParity != StartParityOdd {
				t.Fatalf("force=%v: chapter section %d does not start on a recto page", force, i)
			}
			if s.Kind == SectionKindBlank && s.StartParity != StartParityEven {
				t.Fatalf("force=%v: blank section %d does not start on a verso page", force, i)
			}
		}
	}
}

func TestBuildForcedBlankVersos(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	countBlanks := func(sections []Section) int {
		n := 0
		for _, s := range sections {
			if s.Kind == SectionKindBlank {
				n++
			}
		}
		return n
	}

	if got := countBlanks(Build(planModel(3), planConfig(false), log)); got != 1 {
		t.Fatalf("expected only the leading blank verso, got %d", got)
	}
	if got := countBlanks(Build(planModel(3), planConfig(true), log)); got != 3 {
		t.Fatalf("expected a blank verso per chapter, got %d", got)
	}
}

func TestBuildFirstChapterFlags(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	sections := Build(planModel(2), planConfig(false), log)

	var chapters []*Section
	for i := range sections {
		if sections[i].Kind == SectionKindChapter {
			chapters = append(chapters, &sections[i])
		}
	}
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapter sections, got %d", len(chapters))
	}

	first, second := chapters[0], chapters[1]
	if !first.ResetNumbering || !first.HideEvenHeader {
		t.Fatalf("first chapter flags wrong: %+v", first)
	}
	if second.ResetNumbering || second.HideEvenHeader {
		t.Fatalf("second chapter flags wrong: %+v", second)
	}
	if first.Chapter == nil || first.Chapter.Number != 1 {
		t.Fatalf("first chapter does not point at the model: %+v", first.Chapter)
	}
	if first.HeaderTitle != "A Chapter Title" {
		t.Fatalf("header title not title-cased: %q", first.HeaderTitle)
	}
}
