package extract

// NodeKind is the closed classification of source markup elements. It is
// assigned once by the linearization pre-pass; metadata scanning, chapter
// segmentation and strict mode validation all dispatch on it instead of
// re-deriving element shape from tags.
// ENUM(other, title, subtitle, author, chapterHeading, paragraph, quote, endMarker, footer)
type NodeKind int
