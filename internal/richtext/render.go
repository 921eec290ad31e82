package richtext

import (
	"fmt"
	"strconv"
	"strings"
)

// FontStyle is the active text style on a Canvas.
type FontStyle struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Size      float64
}

// Canvas is the drawing capability the renderer paints through. Measurements
// must reflect the font set by the most recent SetFontStyle call, since one
// wrapped line can mix sizes and weights.
type Canvas interface {
	SetFontStyle(fs FontStyle)
	SetTextColor(r, g, b int)
	MeasureText(s string) float64
	DrawText(x, y float64, s string)
}

// Options carries the geometry and callbacks for one rendering pass.
// DrawHeader is invoked with false whenever the renderer needs a page break;
// the caller is expected to advance the underlying surface to a new page and
// repaint its header, after which the cursor resumes at ContentTop.
type Options struct {
	X            float64 // left edge of the content area
	Y            float64 // starting cursor
	Width        float64 // content width
	PageHeight   float64
	BottomMargin float64
	ContentTop   float64 // cursor position after a page break
	BaseFontSize float64
	LineHeight   float64
	ParagraphGap float64
	ListItemGap  float64
	DrawHeader   func(firstPage bool)
}

func (o *Options) applyDefaults() {
	if o.BaseFontSize <= 0 {
		o.BaseFontSize = 10
	}
	if o.LineHeight <= 0 {
		o.LineHeight = 12
	}
	if o.ParagraphGap <= 0 {
		o.ParagraphGap = 6
	}
	if o.ListItemGap <= 0 {
		o.ListItemGap = 4
	}
	if o.BottomMargin <= 0 {
		o.BottomMargin = 40
	}
	if o.ContentTop <= 0 {
		o.ContentTop = o.Y
	}
}

var headingScale = map[int]float64{1: 1.6, 2: 1.4, 3: 1.2}

// Render lays the elements onto the canvas starting at opts.Y and returns the
// final cursor position. It never fails: unmeasurable or empty segments are
// skipped and malformed colors fall back to black.
func Render(c Canvas, elements []Element, opts Options) float64 {
	opts.applyDefaults()
	r := &renderer{c: c, o: opts, y: opts.Y}
	for _, el := range elements {
		r.element(el)
	}
	return r.y
}

// word is a measured token bound to its resolved style.
type word struct {
	text        string
	fs          FontStyle
	color       string
	width       float64
	spaceBefore float64 // width of the separating space when not first on a line
}

type renderer struct {
	c Canvas
	o Options
	y float64
}

func (r *renderer) element(el Element) {
	baseSize := r.o.BaseFontSize
	headingBold := false
	if el.Type == Heading {
		if s, ok := headingScale[el.Level]; ok {
			baseSize *= s
		}
		headingBold = true
	}

	words := r.tokenize(el, baseSize, headingBold)
	if len(words) == 0 {
		return
	}

	marker := ""
	markerWidth := 0.0
	if el.Type == ListItem {
		if el.ListType == ListOrdered {
			marker = fmt.Sprintf("%d. ", el.ListNumber)
		} else {
			marker = "• "
		}
		r.c.SetFontStyle(FontStyle{Size: baseSize})
		markerWidth = r.c.MeasureText(marker)
	}

	// Word-wrap: accumulate words until the next one would overflow the
	// available width, then flush. The marker narrows only the first line.
	first := true
	avail := r.o.Width - markerWidth
	var line []word
	lineWidth := 0.0
	for _, w := range words {
		sep := 0.0
		if len(line) > 0 {
			sep = w.spaceBefore
		}
		if len(line) > 0 && lineWidth+sep+w.width > avail {
			r.flush(line, lineWidth, el, marker, markerWidth, first)
			first = false
			avail = r.o.Width
			line = line[:0]
			lineWidth = 0
			sep = 0
		}
		w.spaceBefore = sep
		line = append(line, w)
		lineWidth += sep + w.width
	}
	if len(line) > 0 {
		r.flush(line, lineWidth, el, marker, markerWidth, first)
	}

	if el.Type == ListItem {
		r.y += r.o.ListItemGap
	} else {
		r.y += r.o.ParagraphGap
	}
}

// tokenize splits the element's segments into measured words.
func (r *renderer) tokenize(el Element, baseSize float64, forceBold bool) []word {
	var out []word
	for _, seg := range el.Segments {
		size := seg.FontSize
		if size <= 0 {
			size = baseSize
		}
		fs := FontStyle{
			Bold:      seg.Bold || forceBold,
			Italic:    seg.Italic,
			Underline: seg.Underline,
			Strike:    seg.Strike,
			Size:      size,
		}
		fields := strings.Fields(seg.Text)
		if len(fields) == 0 {
			continue
		}
		r.c.SetFontStyle(fs)
		space := r.c.MeasureText(" ")
		for _, f := range fields {
			out = append(out, word{
				text:        f,
				fs:          fs,
				color:       seg.Color,
				width:       r.c.MeasureText(f),
				spaceBefore: space,
			})
		}
	}
	return out
}

// flush paints one wrapped line, breaking the page first when the line would
// run past the bottom margin.
func (r *renderer) flush(line []word, lineWidth float64, el Element, marker string, markerWidth float64, first bool) {
	lh := r.o.LineHeight
	for _, w := range line {
		if s := w.fs.Size * 1.2; w.fs.Size > r.o.BaseFontSize && s > lh {
			lh = s
		}
	}

	if r.y+lh > r.o.PageHeight-r.o.BottomMargin {
		if r.o.DrawHeader != nil {
			r.o.DrawHeader(false)
		}
		r.y = r.o.ContentTop
	}

	total := lineWidth
	if first {
		total += markerWidth
	}
	x := r.o.X
	switch el.Align {
	case AlignCenter:
		x += (r.o.Width - total) / 2
	case AlignRight:
		x += r.o.Width - total
	}

	baseline := r.y + lh

	if first && marker != "" {
		r.c.SetFontStyle(FontStyle{Size: firstWordSize(line, r.o.BaseFontSize)})
		r.c.SetTextColor(0, 0, 0)
		r.c.DrawText(x, baseline, marker)
		x += markerWidth
	}

	for _, w := range line {
		x += w.spaceBefore
		r.c.SetFontStyle(w.fs)
		cr, cg, cb := parseColor(w.color)
		r.c.SetTextColor(cr, cg, cb)
		r.c.DrawText(x, baseline, w.text)
		x += w.width
	}

	r.y += lh
}

func firstWordSize(line []word, def float64) float64 {
	if len(line) > 0 {
		return line[0].fs.Size
	}
	return def
}

// parseColor resolves "#rgb", "#rrggbb" and "rgb(r, g, b)" notations,
// defaulting to black for anything it cannot read.
func parseColor(s string) (int, int, int) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, 0, 0
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return 0, 0, 0
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, 0, 0
		}
		return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return 0, 0, 0
		}
		var vals [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return 0, 0, 0
			}
			vals[i] = n
		}
		return vals[0], vals[1], vals[2]
	}
	return 0, 0, 0
}
