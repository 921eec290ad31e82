package pdf

import (
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/billforge/billforge-api/internal/richtext"
)

// pageGeom is a template's page box in points.
type pageGeom struct {
	W, H    float64
	MarginL float64
	MarginR float64
	MarginT float64
	MarginB float64
}

func (g pageGeom) contentWidth() float64 {
	return g.W - g.MarginL - g.MarginR
}

// drawNotes renders the invoice notes HTML below y and returns the new
// cursor. header is replayed on every page break so continuation pages carry
// the document header.
func drawNotes(p *gofpdf.Fpdf, inv *Invoice, g pageGeom, y float64, contentTop float64, baseSize float64, header func(firstPage bool)) float64 {
	elements := richtext.Parse(inv.NotesHTML, baseSize)
	if len(elements) == 0 {
		return y
	}

	tr := p.UnicodeTranslatorFromDescriptor("")
	p.SetFont("Helvetica", "B", baseSize)
	p.SetTextColor(0, 0, 0)
	p.Text(g.MarginL, y+baseSize, tr("Notes"))
	y += baseSize + 6

	return richtext.Render(newCanvas(p), elements, richtext.Options{
		X:            g.MarginL,
		Y:            y,
		Width:        g.contentWidth(),
		PageHeight:   g.H,
		BottomMargin: g.MarginB,
		ContentTop:   contentTop,
		BaseFontSize: baseSize,
		DrawHeader: func(firstPage bool) {
			p.AddPage()
			if header != nil {
				header(firstPage)
			}
		},
	})
}

// truncate shortens a cell value to fit the given width, appending an
// ellipsis when text is cut.
func truncate(p *gofpdf.Fpdf, s string, width float64) string {
	if p.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && p.GetStringWidth(s+"...") > width {
		s = strings.TrimRight(s[:len(s)-1], " ")
	}
	return s + "..."
}

func partyLines(pi PartyInfo) []string {
	lines := []string{pi.Name}
	if pi.Address != "" {
		lines = append(lines, pi.Address)
	}
	if pi.State != "" {
		lines = append(lines, "State: "+pi.State)
	}
	if pi.GSTIN != "" {
		lines = append(lines, "GSTIN: "+pi.GSTIN)
	}
	return lines
}
