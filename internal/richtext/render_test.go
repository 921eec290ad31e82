package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCanvas measures text deterministically (0.6 × size per rune) and
// records every draw call.
type fakeCanvas struct {
	fs    FontStyle
	calls []drawCall
	color [3]int
}

type drawCall struct {
	x, y  float64
	text  string
	fs    FontStyle
	color [3]int
}

func (f *fakeCanvas) SetFontStyle(fs FontStyle)  { f.fs = fs }
func (f *fakeCanvas) SetTextColor(r, g, b int)   { f.color = [3]int{r, g, b} }
func (f *fakeCanvas) MeasureText(s string) float64 {
	return float64(len([]rune(s))) * f.fs.Size * 0.6
}
func (f *fakeCanvas) DrawText(x, y float64, s string) {
	f.calls = append(f.calls, drawCall{x: x, y: y, text: s, fs: f.fs, color: f.color})
}

func (f *fakeCanvas) lines() map[float64][]string {
	out := make(map[float64][]string)
	for _, c := range f.calls {
		out[c.y] = append(out[c.y], c.text)
	}
	return out
}

func baseOpts() Options {
	return Options{
		X:            10,
		Y:            100,
		Width:        200,
		PageHeight:   800,
		BottomMargin: 40,
		ContentTop:   60,
		BaseFontSize: 10,
	}
}

func TestRender_SingleLine(t *testing.T) {
	c := &fakeCanvas{}
	els := []Element{{Type: Paragraph, Segments: []Segment{{Text: "hello world"}}}}

	final := Render(c, els, baseOpts())

	require.Len(t, c.calls, 2)
	assert.Equal(t, "hello", c.calls[0].text)
	assert.Equal(t, "world", c.calls[1].text)
	assert.Equal(t, c.calls[0].y, c.calls[1].y, "both words on one line")
	// One line (12) plus the paragraph gap (6).
	assert.InDelta(t, 118, final, 1e-9)
}

func TestRender_WordWrap(t *testing.T) {
	c := &fakeCanvas{}
	// Each word is 10 runes × 10pt × 0.6 = 60 wide; three fit in 200 with
	// spaces (60+6+60+6+60=192), the fourth wraps.
	text := strings.TrimSpace(strings.Repeat("abcdefghij ", 4))
	els := []Element{{Type: Paragraph, Segments: []Segment{{Text: text}}}}

	Render(c, els, baseOpts())

	lines := c.lines()
	require.Len(t, lines, 2)
	for _, words := range lines {
		assert.Contains(t, []int{1, 3}, len(words))
	}
}

func TestRender_MixedSegmentStyles(t *testing.T) {
	c := &fakeCanvas{}
	els := []Element{{Type: Paragraph, Segments: []Segment{
		{Text: "big", FontSize: 25},
		{Text: "red", Color: "#ff0000"},
	}}}

	Render(c, els, baseOpts())

	require.Len(t, c.calls, 2)
	assert.InDelta(t, 25, c.calls[0].fs.Size, 1e-9)
	assert.InDelta(t, 10, c.calls[1].fs.Size, 1e-9)
	assert.Equal(t, [3]int{255, 0, 0}, c.calls[1].color)
	assert.Equal(t, [3]int{0, 0, 0}, c.calls[0].color)
}

func TestRender_Alignment(t *testing.T) {
	word := "hi" // width 2×10×0.6 = 12

	for _, tt := range []struct {
		align Alignment
		wantX float64
	}{
		{AlignLeft, 10},
		{AlignCenter, 10 + (200-12)/2},
		{AlignRight, 10 + 200 - 12},
	} {
		c := &fakeCanvas{}
		els := []Element{{Type: Paragraph, Align: tt.align, Segments: []Segment{{Text: word}}}}
		Render(c, els, baseOpts())
		require.Len(t, c.calls, 1)
		assert.InDelta(t, tt.wantX, c.calls[0].x, 1e-9, "align %v", tt.align)
	}
}

func TestRender_ListMarkerOnFirstLineOnly(t *testing.T) {
	c := &fakeCanvas{}
	text := strings.TrimSpace(strings.Repeat("abcdefghij ", 6))
	els := []Element{{
		Type: ListItem, ListType: ListOrdered, ListNumber: 3,
		Segments: []Segment{{Text: text}},
	}}

	Render(c, els, baseOpts())

	markers := 0
	for _, call := range c.calls {
		if call.text == "3. " {
			markers++
		}
	}
	assert.Equal(t, 1, markers)
	assert.Equal(t, "3. ", c.calls[0].text)
	assert.Greater(t, len(c.lines()), 1, "item should have wrapped")
}

func TestRender_UnorderedMarker(t *testing.T) {
	c := &fakeCanvas{}
	els := []Element{{Type: ListItem, ListType: ListUnordered, Segments: []Segment{{Text: "point"}}}}
	Render(c, els, baseOpts())
	require.NotEmpty(t, c.calls)
	assert.Equal(t, "• ", c.calls[0].text)
}

func TestRender_PageBreakInvokesHeader(t *testing.T) {
	c := &fakeCanvas{}
	opts := baseOpts()
	opts.PageHeight = 200
	opts.Y = 150

	headerCalls := 0
	opts.DrawHeader = func(firstPage bool) {
		assert.False(t, firstPage)
		headerCalls++
	}

	var els []Element
	for i := 0; i < 10; i++ {
		els = append(els, Element{Type: Paragraph, Segments: []Segment{{Text: "line of text"}}})
	}

	final := Render(c, els, opts)

	assert.GreaterOrEqual(t, headerCalls, 1)
	assert.Less(t, final, opts.PageHeight-opts.BottomMargin+opts.ParagraphGap)

	// After a break the cursor restarts at ContentTop.
	for _, call := range c.calls {
		assert.GreaterOrEqual(t, call.y, opts.ContentTop)
		assert.LessOrEqual(t, call.y, opts.PageHeight-opts.BottomMargin)
	}
}

func TestRender_LongParagraphBreaksMidElement(t *testing.T) {
	c := &fakeCanvas{}
	opts := baseOpts()
	opts.PageHeight = 160
	opts.Y = 100
	opts.ContentTop = 20

	headerCalls := 0
	opts.DrawHeader = func(bool) { headerCalls++ }

	text := strings.TrimSpace(strings.Repeat("abcdefghij ", 30))
	els := []Element{{Type: Paragraph, Segments: []Segment{{Text: text}}}}

	Render(c, els, opts)

	assert.GreaterOrEqual(t, headerCalls, 1, "a single long paragraph must span pages")
}

func TestRender_EmptyElementsSkipped(t *testing.T) {
	c := &fakeCanvas{}
	final := Render(c, []Element{{Type: Paragraph}, {Type: ListItem, ListType: ListUnordered}}, baseOpts())
	assert.Empty(t, c.calls)
	assert.InDelta(t, baseOpts().Y, final, 1e-9)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"", 0, 0, 0},
		{"#ff0000", 255, 0, 0},
		{"#0f0", 0, 255, 0},
		{"rgb(1, 2, 3)", 1, 2, 3},
		{"rgb(999, 0, 0)", 0, 0, 0},
		{"not-a-color", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseColor(tt.in)
		assert.Equal(t, [3]int{tt.r, tt.g, tt.b}, [3]int{r, g, b}, "parseColor(%q)", tt.in)
	}
}
