package pdf

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/billforge/billforge-api/internal/richtext"
)

const (
	// thermal80mmWidth is an 80mm receipt roll in points.
	thermal80mmWidth = 226.77
	// thermalMaxHeight is the PDF page-size ceiling (14400pt, 200 inches).
	// The measuring pass runs on a strip this tall so nothing can wrap.
	thermalMaxHeight = 14400.0
)

// thermalTemplate lays the invoice out as a single continuous receipt strip
// for 80mm roll printers. A first pass on an oversized strip measures the
// exact content height, including every wrapped notes line; the real strip is
// then cut to that height so the notes can never run past it.
type thermalTemplate struct{}

func (thermalTemplate) Key() string { return "thermal" }

func (t thermalTemplate) Render(inv *Invoice) (*gofpdf.Fpdf, error) {
	scratch := newThermalStrip(thermalMaxHeight)
	yEnd := t.draw(scratch, inv, thermalMaxHeight)
	if err := scratch.Error(); err != nil {
		return nil, err
	}

	height := yEnd + 12
	p := newThermalStrip(height)
	t.draw(p, inv, height)
	return p, p.Error()
}

func newThermalStrip(height float64) *gofpdf.Fpdf {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: thermal80mmWidth, Ht: height},
	})
	p.SetAutoPageBreak(false, 0)
	return p
}

// draw paints the full receipt and returns the final cursor position. Both
// passes run the identical code path so the measured height is exact.
func (thermalTemplate) draw(p *gofpdf.Fpdf, inv *Invoice, height float64) float64 {
	tr := p.UnicodeTranslatorFromDescriptor("")

	g := pageGeom{W: thermal80mmWidth, H: height, MarginL: 10, MarginR: 10, MarginT: 12, MarginB: 12}
	w := g.contentWidth()

	p.AddPage()
	y := g.MarginT

	line := func(s string, size float64, style string, centered bool) {
		p.SetFont("Helvetica", style, size)
		s = tr(truncate(p, s, w))
		x := g.MarginL
		if centered {
			x += (w - p.GetStringWidth(s)) / 2
		}
		y += size + 2
		p.Text(x, y, s)
	}
	rule := func() {
		y += 4
		p.SetDrawColor(0, 0, 0)
		p.Line(g.MarginL, y, g.W-g.MarginR, y)
		y += 2
	}

	line(inv.Company.Name, 11, "B", true)
	for _, l := range companyLines(inv.Company) {
		line(l, 7, "", true)
	}
	rule()
	line("Invoice "+inv.Number, 8, "B", false)
	line("Date: "+inv.Date, 7, "", false)
	if inv.Client.Name != "" {
		line("To: "+inv.Client.Name, 7, "", false)
	}
	rule()

	right := func(s string, size float64, style string) {
		p.SetFont("Helvetica", style, size)
		p.Text(g.W-g.MarginR-p.GetStringWidth(s), y, s)
	}

	for _, it := range inv.Data.Lines {
		line(it.Name, 8, "", false)
		qtyRate := qty(it.Quantity) + " x " + money(it.PricePerUnit)
		line(qtyRate, 7, "", false)
		right(money(it.LineTotal), 8, "")
	}
	rule()

	tot := inv.Data.Totals
	line("Subtotal", 8, "", false)
	right(money(tot.Subtotal), 8, "")
	if tot.GSTEnabled {
		if inv.Data.Interstate {
			line("IGST", 8, "", false)
			right(money(tot.IGSTTotal), 8, "")
		} else {
			line("CGST", 8, "", false)
			right(money(tot.CGSTTotal), 8, "")
			line("SGST", 8, "", false)
			right(money(tot.SGSTTotal), 8, "")
		}
	}
	line("TOTAL", 10, "B", false)
	right(money(tot.InvoiceTotal), 10, "B")
	rule()

	if els := richtext.Parse(inv.NotesHTML, 7); len(els) > 0 {
		y = richtext.Render(newCanvas(p), els, richtext.Options{
			X:            g.MarginL,
			Y:            y + 4,
			Width:        w,
			PageHeight:   height,
			BottomMargin: 2,
			ContentTop:   g.MarginT,
			BaseFontSize: 7,
			LineHeight:   9,
			ParagraphGap: 4,
			ListItemGap:  2,
		})
	}

	y += 12
	line("Thank you for your business!", 7, "I", true)

	return y
}
