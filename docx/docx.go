// Package docx implements a minimal WordprocessingML writer covering
// exactly what paginated book output needs.
// Sections with independent geometry and headers, named paragraph styles,
// paired bookmarks and renderer-resolved field codes. Actual glyph layout and
// page number computation are left to the consuming word processor.
package docx

import (
	"fmt"
	"math"
	"strings"
)

const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsW15 = "http://schemas.microsoft.com/office/word/2012/wordml"
	nsMC  = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

// twips converts inches to twentieths of a point, the unit page geometry is
// expressed in.
func twips(inches float64) string {
	return fmt.Sprintf("%d", int(math.Round(inches*1440)))
}

// halfPoints converts a font size in points to the w:sz unit.
func halfPoints(pt float64) string {
	return fmt.Sprintf("%d", int(math.Round(pt*2)))
}

// twentieths converts spacing in points to the w:spacing unit.
func twentieths(pt float64) string {
	return fmt.Sprintf("%d", int(math.Round(pt*20)))
}

// lineUnits converts a line spacing multiple to 240ths of a line.
func lineUnits(multiple float64) string {
	return fmt.Sprintf("%d", int(math.Round(multiple*240)))
}

func jcVal(align string) string {
	if align == "justify" {
		return "both"
	}
	return align
}

// styleID derives the internal style identifier from a display name the way
// word processors do, by dropping spaces.
func styleID(name string) string {
	return strings.ReplaceAll(name, " ", "")
}
