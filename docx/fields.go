package docx

// Field code sequences. Displayed values are computed by the consuming word
// processor at open or print time, never here.

// AddPageNumberField emits the current page number field.
func (p *Paragraph) AddPageNumberField() {
	p.addFldChar("begin")
	p.addInstrText(" PAGE ")
	p.addFldChar("end")
}

// AddPageRef emits the three part forward page reference construct for the
// named bookmark: field begin, the PAGEREF instruction, then a separator
// followed by a placeholder "0" the renderer replaces with the actual page
// number.
func (p *Paragraph) AddPageRef(bookmark string) {
	p.AddText(" ")
	p.addFldChar("begin")
	p.addInstrText(" PAGEREF " + bookmark + ` \h `)
	p.addFldChar("separate")
	p.AddText("0")
	p.addFldChar("end")
}

func (p *Paragraph) addFldChar(fldType string) {
	r := p.p.CreateElement("w:r")
	r.CreateElement("w:fldChar").CreateAttr("w:fldCharType", fldType)
}

func (p *Paragraph) addInstrText(instr string) {
	r := p.p.CreateElement("w:r")
	t := r.CreateElement("w:instrText")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(instr)
}
