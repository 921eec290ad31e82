package pdf

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/billforge/billforge-api/internal/richtext"
)

// canvas adapts a gofpdf document to the richtext.Canvas capability so the
// layout engine stays independent of the concrete PDF library. Text passes
// through the cp1252 translator because the core fonts cannot take raw UTF-8.
type canvas struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

func newCanvas(p *gofpdf.Fpdf) *canvas {
	return &canvas{pdf: p, family: "Helvetica", tr: p.UnicodeTranslatorFromDescriptor("")}
}

func (c *canvas) SetFontStyle(fs richtext.FontStyle) {
	style := ""
	if fs.Bold {
		style += "B"
	}
	if fs.Italic {
		style += "I"
	}
	if fs.Underline {
		style += "U"
	}
	if fs.Strike {
		style += "S"
	}
	c.pdf.SetFont(c.family, style, fs.Size)
}

func (c *canvas) SetTextColor(r, g, b int) {
	c.pdf.SetTextColor(r, g, b)
}

func (c *canvas) MeasureText(s string) float64 {
	return c.pdf.GetStringWidth(c.tr(s))
}

func (c *canvas) DrawText(x, y float64, s string) {
	c.pdf.Text(x, y, c.tr(s))
}
