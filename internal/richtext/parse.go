package richtext

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Size class multipliers relative to the base font size. The editor emits
// Quill's ql-size-* classes; "small" uses a single consistent 0.85.
const (
	sizeSmallScale = 0.85
	sizeLargeScale = 1.5
	sizeHugeScale  = 2.5
)

// Parse converts an HTML notes string into an ordered list of styled blocks.
// Unrecognized tags are skipped and blocks with no visible text are dropped;
// malformed input yields nil rather than an error, since the HTML comes from
// a constrained but unvalidated editor.
func Parse(src string, baseFontSize float64) []Element {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil
	}
	body := findBody(doc)
	if body == nil {
		return nil
	}

	p := &parser{base: baseFontSize}
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			p.topLevel(n)
		}
	}
	return p.out
}

// listState tracks the ambient list run across top-level siblings. The
// ordered counter restarts whenever the run ends or switches type.
type listState struct {
	typ     ListType
	counter int
}

// next transitions into an item of the given type and returns its number
// (zero for unordered items).
func (s *listState) next(t ListType) int {
	if s.typ != t {
		s.typ = t
		s.counter = 0
	}
	if t == ListOrdered {
		s.counter++
		return s.counter
	}
	return 0
}

func (s *listState) reset() {
	s.typ = ListNone
	s.counter = 0
}

type parser struct {
	base float64
	out  []Element
	list listState
}

func (p *parser) topLevel(n *html.Node) {
	if t := dataListType(n); t != ListNone {
		p.emitItem(n, t)
		return
	}

	switch n.Data {
	case "ol":
		p.container(n, ListOrdered)
	case "ul":
		p.container(n, ListUnordered)
	case "li":
		p.emitItem(n, looseItemType(n))
	case "p":
		p.list.reset()
		p.emitBlock(n, Paragraph, 0)
	case "h1", "h2", "h3":
		p.list.reset()
		p.emitBlock(n, Heading, int(n.Data[1]-'0'))
	default:
		// Unsupported element: skipped, and it ends any running list.
		p.list.reset()
	}
}

// container processes an explicit <ol>/<ul> block. Its items number locally
// from 1 regardless of any ambient counter, and the ambient run does not
// survive past the container.
func (p *parser) container(n *html.Node, t ListType) {
	local := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		segs := p.segments(c)
		if blank(segs) {
			continue
		}
		el := Element{Type: ListItem, Segments: segs, Align: alignOf(c), ListType: t}
		if t == ListOrdered {
			local++
			el.ListNumber = local
		}
		p.out = append(p.out, el)
	}
	p.list.reset()
}

// emitItem appends a list item driven by the ambient state machine, used for
// data-list elements and loose <li> siblings.
func (p *parser) emitItem(n *html.Node, t ListType) {
	segs := p.segments(n)
	if blank(segs) {
		return
	}
	el := Element{Type: ListItem, Segments: segs, Align: alignOf(n), ListType: t}
	el.ListNumber = p.list.next(t)
	p.out = append(p.out, el)
}

func (p *parser) emitBlock(n *html.Node, t ElementType, level int) {
	segs := p.segments(n)
	if blank(segs) {
		return
	}
	p.out = append(p.out, Element{Type: t, Segments: segs, Align: alignOf(n), Level: level})
}

// segStyle is the style accumulated while descending into inline children.
type segStyle struct {
	bold, italic, underline, strike bool
	color, background               string
	size                            float64
}

func (p *parser) segments(n *html.Node) []Segment {
	var out []Segment
	p.collect(n, p.inlineStyle(n, segStyle{}), &out)
	return out
}

// collect walks the subtree accumulating inherited style flags. A text node's
// final style is the union of its ancestors' contributions, with the nearest
// explicit font size winning.
func (p *parser) collect(n *html.Node, st segStyle, out *[]Segment) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			txt := collapseSpace(c.Data)
			if strings.TrimSpace(txt) == "" {
				continue
			}
			*out = append(*out, Segment{
				Text:       txt,
				Bold:       st.bold,
				Italic:     st.italic,
				Underline:  st.underline,
				Strike:     st.strike,
				Color:      st.color,
				Background: st.background,
				FontSize:   st.size,
			})
		case html.ElementNode:
			p.collect(c, p.inlineStyle(c, st), out)
		}
	}
}

// inlineStyle folds one element's contribution into the inherited style.
func (p *parser) inlineStyle(n *html.Node, st segStyle) segStyle {
	switch n.Data {
	case "strong", "b":
		st.bold = true
	case "em", "i":
		st.italic = true
	case "u":
		st.underline = true
	case "s", "strike", "del":
		st.strike = true
	}

	for _, cls := range strings.Fields(attrVal(n, "class")) {
		switch cls {
		case "ql-size-small":
			st.size = p.base * sizeSmallScale
		case "ql-size-large":
			st.size = p.base * sizeLargeScale
		case "ql-size-huge":
			st.size = p.base * sizeHugeScale
		}
	}

	for prop, val := range parseStyleAttr(attrVal(n, "style")) {
		switch prop {
		case "font-size":
			if sz := parseFontSize(val); sz > 0 {
				st.size = sz
			}
		case "color":
			st.color = val
		case "background-color":
			st.background = val
		}
	}
	return st
}

// dataListType maps an explicit data-list attribute to a list type.
func dataListType(n *html.Node) ListType {
	switch attrVal(n, "data-list") {
	case "ordered":
		return ListOrdered
	case "bullet":
		return ListUnordered
	default:
		return ListNone
	}
}

// looseItemType infers the type of a standalone <li>: the parent tag when it
// is a real list container, else the immediately preceding element sibling's
// data-list attribute, defaulting to unordered.
func looseItemType(n *html.Node) ListType {
	if n.Parent != nil {
		switch n.Parent.Data {
		case "ol":
			return ListOrdered
		case "ul":
			return ListUnordered
		}
	}
	for prev := n.PrevSibling; prev != nil; prev = prev.PrevSibling {
		if prev.Type != html.ElementNode {
			continue
		}
		if t := dataListType(prev); t != ListNone {
			return t
		}
		break
	}
	return ListUnordered
}

func alignOf(n *html.Node) Alignment {
	for _, cls := range strings.Fields(attrVal(n, "class")) {
		switch cls {
		case "ql-align-center":
			return AlignCenter
		case "ql-align-right":
			return AlignRight
		}
	}
	switch parseStyleAttr(attrVal(n, "style"))["text-align"] {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	}
	return AlignLeft
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// parseStyleAttr splits an inline style attribute into property/value pairs.
func parseStyleAttr(style string) map[string]string {
	if style == "" {
		return nil
	}
	out := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out
}

// parseFontSize reads a px/pt font-size value; bare numbers are accepted too.
func parseFontSize(v string) float64 {
	v = strings.TrimSpace(strings.ToLower(v))
	v = strings.TrimSuffix(v, "px")
	v = strings.TrimSuffix(v, "pt")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

var spaceRun = regexp.MustCompile(`\s+`)

func collapseSpace(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}

func blank(segs []Segment) bool {
	for _, s := range segs {
		if strings.TrimSpace(s.Text) != "" {
			return false
		}
	}
	return true
}

func findBody(doc *html.Node) *html.Node {
	var body *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return body
}
