package extract

import (
	"fmt"
	"strings"
)

// ExtractionError reports malformed source markup: an unparseable chapter
// heading, an invalid Roman numeral or a strict mode violation.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return e.Reason
}

func extractionErrorf(format string, args ...any) *ExtractionError {
	return &ExtractionError{Reason: fmt.Sprintf(format, args...)}
}

// MissingBookmarkError lists cross-reference targets which never materialized
// as bookmarks. It always carries the complete sorted list, not the first
// offender.
type MissingBookmarkError struct {
	IDs []string
}

func (e *MissingBookmarkError) Error() string {
	return fmt.Sprintf("cross-reference targets without bookmarks: %s", strings.Join(e.IDs, ", "))
}
