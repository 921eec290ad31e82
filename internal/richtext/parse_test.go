package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyInput(t *testing.T) {
	for _, src := range []string{"", "   ", "<p></p>", "<p>   </p>", "<p><strong>  </strong></p>"} {
		assert.Nil(t, Parse(src, 10), "source %q", src)
	}
}

func TestParse_Paragraph(t *testing.T) {
	els := Parse("<p>Payment due in 30 days.</p>", 10)
	require.Len(t, els, 1)
	assert.Equal(t, Paragraph, els[0].Type)
	assert.Equal(t, "Payment due in 30 days.", els[0].Text())
	assert.Equal(t, AlignLeft, els[0].Align)
}

func TestParse_BoldAndPlainSegments(t *testing.T) {
	els := Parse("<p><strong>Bold</strong> plain</p>", 10)
	require.Len(t, els, 1)
	require.Len(t, els[0].Segments, 2)
	assert.True(t, els[0].Segments[0].Bold)
	assert.Equal(t, "Bold", els[0].Segments[0].Text)
	assert.False(t, els[0].Segments[1].Bold)
	assert.Equal(t, "Bold plain", els[0].Text())
}

func TestParse_InlineStyleInheritance(t *testing.T) {
	els := Parse(`<p><em><u>both</u></em><s>struck</s></p>`, 10)
	require.Len(t, els, 1)
	require.Len(t, els[0].Segments, 2)
	assert.True(t, els[0].Segments[0].Italic)
	assert.True(t, els[0].Segments[0].Underline)
	assert.False(t, els[0].Segments[0].Strike)
	assert.True(t, els[0].Segments[1].Strike)
}

func TestParse_SizeClassesAndStyles(t *testing.T) {
	src := `<p><span class="ql-size-small">s</span><span class="ql-size-large">l</span>` +
		`<span class="ql-size-huge">h</span><span style="font-size: 18px; color: #ff0000">c</span></p>`
	els := Parse(src, 10)
	require.Len(t, els, 1)
	segs := els[0].Segments
	require.Len(t, segs, 4)
	assert.InDelta(t, 8.5, segs[0].FontSize, 1e-9)
	assert.InDelta(t, 15, segs[1].FontSize, 1e-9)
	assert.InDelta(t, 25, segs[2].FontSize, 1e-9)
	assert.InDelta(t, 18, segs[3].FontSize, 1e-9)
	assert.Equal(t, "#ff0000", segs[3].Color)
}

func TestParse_NearestFontSizeWins(t *testing.T) {
	src := `<p><span class="ql-size-huge">outer<span class="ql-size-small">inner</span></span></p>`
	els := Parse(src, 10)
	require.Len(t, els, 1)
	require.Len(t, els[0].Segments, 2)
	assert.InDelta(t, 25, els[0].Segments[0].FontSize, 1e-9)
	assert.InDelta(t, 8.5, els[0].Segments[1].FontSize, 1e-9)
}

func TestParse_Headings(t *testing.T) {
	els := Parse("<h1>One</h1><h2>Two</h2><h3>Three</h3>", 10)
	require.Len(t, els, 3)
	for i, el := range els {
		assert.Equal(t, Heading, el.Type)
		assert.Equal(t, i+1, el.Level)
	}
}

func TestParse_OrderedListContainer(t *testing.T) {
	els := Parse("<ol><li>A</li><li>B</li></ol>", 10)
	require.Len(t, els, 2)
	for i, el := range els {
		assert.Equal(t, ListItem, el.Type)
		assert.Equal(t, ListOrdered, el.ListType)
		assert.Equal(t, i+1, el.ListNumber)
	}
}

func TestParse_ConsecutiveContainersRestart(t *testing.T) {
	els := Parse("<ol><li>A</li><li>B</li></ol><ol><li>C</li></ol>", 10)
	require.Len(t, els, 3)
	assert.Equal(t, 1, els[0].ListNumber)
	assert.Equal(t, 2, els[1].ListNumber)
	assert.Equal(t, 1, els[2].ListNumber)
}

func TestParse_EmptyItemsDropped(t *testing.T) {
	els := Parse("<ol><li>A</li><li>  </li><li>B</li></ol>", 10)
	require.Len(t, els, 2)
	assert.Equal(t, 1, els[0].ListNumber)
	assert.Equal(t, 2, els[1].ListNumber)
}

func TestParse_UnorderedItemsCarryNoNumber(t *testing.T) {
	els := Parse("<ul><li>A</li><li>B</li></ul>", 10)
	require.Len(t, els, 2)
	for _, el := range els {
		assert.Equal(t, ListUnordered, el.ListType)
		assert.Zero(t, el.ListNumber)
	}
}

func TestParse_DataListRun(t *testing.T) {
	src := `<p data-list="ordered">A</p><p data-list="ordered">B</p>` +
		`<p data-list="bullet">C</p><p data-list="ordered">D</p>`
	els := Parse(src, 10)
	require.Len(t, els, 4)
	assert.Equal(t, 1, els[0].ListNumber)
	assert.Equal(t, 2, els[1].ListNumber)
	assert.Equal(t, ListUnordered, els[2].ListType)
	// Switching type resets the ordered counter.
	assert.Equal(t, 1, els[3].ListNumber)
}

func TestParse_ParagraphEndsListRun(t *testing.T) {
	src := `<p data-list="ordered">A</p><p>break</p><p data-list="ordered">B</p>`
	els := Parse(src, 10)
	require.Len(t, els, 3)
	assert.Equal(t, 1, els[0].ListNumber)
	assert.Equal(t, Paragraph, els[1].Type)
	assert.Equal(t, 1, els[2].ListNumber)
}

func TestParse_LooseListItem(t *testing.T) {
	// A loose <li> takes its type from the preceding data-list sibling.
	els := Parse(`<p data-list="ordered">A</p><li>B</li>`, 10)
	require.Len(t, els, 2)
	assert.Equal(t, ListOrdered, els[1].ListType)
	assert.Equal(t, 2, els[1].ListNumber)

	// With no signal at all it defaults to unordered.
	els = Parse("<li>solo</li>", 10)
	require.Len(t, els, 1)
	assert.Equal(t, ListUnordered, els[0].ListType)
	assert.Zero(t, els[0].ListNumber)
}

func TestParse_Alignment(t *testing.T) {
	els := Parse(`<p class="ql-align-center">C</p><p class="ql-align-right">R</p>`+
		`<p style="text-align: center">S</p>`, 10)
	require.Len(t, els, 3)
	assert.Equal(t, AlignCenter, els[0].Align)
	assert.Equal(t, AlignRight, els[1].Align)
	assert.Equal(t, AlignCenter, els[2].Align)
}

func TestParse_UnknownTagsIgnored(t *testing.T) {
	els := Parse("<table><tr><td>cell</td></tr></table><p>after</p>", 10)
	require.Len(t, els, 1)
	assert.Equal(t, "after", els[0].Text())
}

func TestParse_WhitespaceCollapsed(t *testing.T) {
	els := Parse("<p>two\n   words</p>", 10)
	require.Len(t, els, 1)
	assert.Equal(t, "two words", els[0].Text())
}
