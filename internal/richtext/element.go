// Package richtext parses the constrained HTML produced by the dashboard's
// notes editor into flat styled blocks and lays those blocks onto a paginated
// drawing surface. The parser and renderer are pure; the only side effect is
// the renderer painting through the Canvas capability it is handed.
package richtext

import "strings"

// ElementType classifies a parsed block.
type ElementType int

const (
	Paragraph ElementType = iota
	Heading
	ListItem
)

func (t ElementType) String() string {
	switch t {
	case Heading:
		return "heading"
	case ListItem:
		return "list"
	default:
		return "paragraph"
	}
}

// ListType distinguishes ordered and unordered list items.
type ListType int

const (
	ListNone ListType = iota
	ListOrdered
	ListUnordered
)

// Alignment is the horizontal alignment of a block.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Segment is a run of text with uniform inline styling. FontSize is zero when
// the segment inherits the element's base size.
type Segment struct {
	Text       string
	Bold       bool
	Italic     bool
	Underline  bool
	Strike     bool
	Color      string
	Background string
	FontSize   float64
}

// Element is one flat block in document order. Level is set for headings
// (1-3); ListNumber only for ordered list items.
type Element struct {
	Type       ElementType
	Segments   []Segment
	Align      Alignment
	Level      int
	ListType   ListType
	ListNumber int
}

// Text returns the plain concatenated text of all segments.
func (e Element) Text() string {
	var b strings.Builder
	for _, s := range e.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
