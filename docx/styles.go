package docx

import (
	"github.com/beevik/etree"

	"github.com/Shane32/BookConverter/config"
)

// buildStyles serializes the named style table into the styles part. The
// table is configuration data reproduced faithfully, no defaults are invented
// here.
func buildStyles(styles []config.StyleConfig, lang string) *etree.Document {

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:styles")
	root.CreateAttr("xmlns:w", nsW)

	docDefaults := root.CreateElement("w:docDefaults")
	rPrDefault := docDefaults.CreateElement("w:rPrDefault")
	if lang != "" {
		rPrDefault.CreateElement("w:rPr").CreateElement("w:lang").CreateAttr("w:val", lang)
	}
	docDefaults.CreateElement("w:pPrDefault")

	for _, st := range styles {
		el := root.CreateElement("w:style")
		el.CreateAttr("w:type", "paragraph")
		if st.Name == "Normal" {
			el.CreateAttr("w:default", "1")
		}
		el.CreateAttr("w:styleId", styleID(st.Name))
		el.CreateElement("w:name").CreateAttr("w:val", st.Name)
		el.CreateElement("w:qFormat")

		pPr := el.CreateElement("w:pPr")
		if len(st.Tabs) > 0 {
			tabs := pPr.CreateElement("w:tabs")
			for _, ts := range st.Tabs {
				tab := tabs.CreateElement("w:tab")
				tab.CreateAttr("w:val", ts.Align)
				if ts.Leader == "dot" {
					tab.CreateAttr("w:leader", "dot")
				}
				tab.CreateAttr("w:pos", twips(ts.PositionIn))
			}
		}
		if st.SpaceBeforePt > 0 || st.SpaceAfterPt > 0 || st.LineSpacing > 0 {
			spacing := pPr.CreateElement("w:spacing")
			if st.SpaceBeforePt > 0 {
				spacing.CreateAttr("w:before", twentieths(st.SpaceBeforePt))
			}
			if st.SpaceAfterPt > 0 {
				spacing.CreateAttr("w:after", twentieths(st.SpaceAfterPt))
			}
			if st.LineSpacing > 0 {
				spacing.CreateAttr("w:line", lineUnits(st.LineSpacing))
				spacing.CreateAttr("w:lineRule", "auto")
			}
		}
		if st.LeftIndentIn > 0 || st.RightIndentIn > 0 || st.FirstLineIndentIn != nil {
			ind := pPr.CreateElement("w:ind")
			if st.LeftIndentIn > 0 {
				ind.CreateAttr("w:left", twips(st.LeftIndentIn))
			}
			if st.RightIndentIn > 0 {
				ind.CreateAttr("w:right", twips(st.RightIndentIn))
			}
			if st.FirstLineIndentIn != nil {
				ind.CreateAttr("w:firstLine", twips(*st.FirstLineIndentIn))
			}
		}
		if st.Align != "" {
			pPr.CreateElement("w:jc").CreateAttr("w:val", jcVal(st.Align))
		}

		rPr := el.CreateElement("w:rPr")
		rFonts := rPr.CreateElement("w:rFonts")
		rFonts.CreateAttr("w:ascii", st.Font)
		rFonts.CreateAttr("w:hAnsi", st.Font)
		if st.Bold {
			rPr.CreateElement("w:b")
		}
		if st.Italic {
			rPr.CreateElement("w:i")
		}
		rPr.CreateElement("w:sz").CreateAttr("w:val", halfPoints(st.SizePt))
		rPr.CreateElement("w:szCs").CreateAttr("w:val", halfPoints(st.SizePt))
	}
	return doc
}
