package plan

// StartParity is the page parity a section must start on. Enforcement is a
// property of the section break type requested from the renderer, never
// arithmetic on an assumed page count.
// ENUM(none, odd, even)
type StartParity int

// SectionKind tells the emitter what content a planned section carries.
// ENUM(title, dedication, toc, blank, chapter)
type SectionKind int
