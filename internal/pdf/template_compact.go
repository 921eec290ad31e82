package pdf

import (
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// compactTemplate is a condensed A5 layout for counter billing: single party
// block, a narrow table without the per-line GST split, and totals.
type compactTemplate struct{}

func (compactTemplate) Key() string { return "compact" }

func (t compactTemplate) Render(inv *Invoice) (*gofpdf.Fpdf, error) {
	p := gofpdf.New("P", "pt", "A5", "")
	p.SetAutoPageBreak(false, 0)
	tr := p.UnicodeTranslatorFromDescriptor("")

	g := pageGeom{W: 419.53, H: 595.28, MarginL: 28, MarginR: 28, MarginT: 28, MarginB: 36}

	header := func(bool) float64 {
		y := g.MarginT
		p.SetTextColor(0, 0, 0)
		p.SetFont("Helvetica", "B", 12)
		p.Text(g.MarginL, y+12, tr(inv.Company.Name))
		y += 12

		p.SetFont("Helvetica", "", 7.5)
		for _, line := range companyLines(inv.Company) {
			y += 10
			p.Text(g.MarginL, y, tr(line))
		}

		p.SetFont("Helvetica", "B", 8)
		meta := "Invoice " + inv.Number + "  " + inv.Date
		p.Text(g.W-g.MarginR-p.GetStringWidth(tr(meta)), g.MarginT+12, tr(meta))

		y += 8
		p.Line(g.MarginL, y, g.W-g.MarginR, y)
		return y + 10
	}

	p.AddPage()
	y := header(true)

	p.SetFont("Helvetica", "B", 8)
	p.Text(g.MarginL, y+8, "Bill To")
	p.SetFont("Helvetica", "", 8)
	y += 10
	for _, line := range partyLines(inv.Client) {
		p.Text(g.MarginL, y+8, tr(truncate(p, line, g.contentWidth())))
		y += 10
	}
	y += 8

	y = t.itemsTable(p, inv, g, y, func() float64 {
		p.AddPage()
		return header(false)
	})

	y = t.totals(p, inv, g, y)

	contentTop := g.MarginT + 70
	drawNotes(p, inv, g, y+10, contentTop, 7.5, func(bool) { header(false) })

	return p, p.Error()
}

func (compactTemplate) itemsTable(p *gofpdf.Fpdf, inv *Invoice, g pageGeom, y float64, newPage func() float64) float64 {
	tr := p.UnicodeTranslatorFromDescriptor("")
	widths := []float64{18, 0, 30, 50, 56}
	heads := []string{"#", "Item", "Qty", "Rate", "Total"}
	fixed := widths[0] + widths[2] + widths[3] + widths[4]
	widths[1] = g.contentWidth() - fixed

	head := func(cy float64) float64 {
		p.SetFillColor(240, 240, 240)
		p.SetFont("Helvetica", "B", 7.5)
		p.SetXY(g.MarginL, cy)
		for i, h := range heads {
			align := "L"
			if i >= 2 {
				align = "R"
			}
			p.CellFormat(widths[i], 13, h, "1", 0, align, true, 0, "")
		}
		return cy + 13
	}

	y = head(y)
	p.SetFont("Helvetica", "", 7.5)
	for i, line := range inv.Data.Lines {
		if y+12 > g.H-g.MarginB-50 {
			y = head(newPage())
			p.SetFont("Helvetica", "", 7.5)
		}
		p.SetXY(g.MarginL, y)
		cells := []string{
			strconv.Itoa(i + 1),
			truncate(p, tr(line.Name), widths[1]-4),
			qty(line.Quantity),
			money(line.PricePerUnit),
			money(line.LineTotal),
		}
		for c, v := range cells {
			align := "L"
			if c >= 2 {
				align = "R"
			}
			p.CellFormat(widths[c], 12, v, "1", 0, align, false, 0, "")
		}
		y += 12
	}
	return y + 8
}

func (compactTemplate) totals(p *gofpdf.Fpdf, inv *Invoice, g pageGeom, y float64) float64 {
	tot := inv.Data.Totals
	rows := [][2]string{{"Subtotal", money(tot.Subtotal)}}
	if tot.GSTEnabled {
		if inv.Data.Interstate {
			rows = append(rows, [2]string{"IGST", money(tot.IGSTTotal)})
		} else {
			rows = append(rows, [2]string{"CGST + SGST", money(tot.CGSTTotal + tot.SGSTTotal)})
		}
	}
	rows = append(rows, [2]string{"Total", money(tot.InvoiceTotal)})

	labelX := g.W - g.MarginR - 130
	for i, row := range rows {
		style := ""
		if i == len(rows)-1 {
			style = "B"
		}
		p.SetFont("Helvetica", style, 8)
		p.Text(labelX, y+9, row[0])
		p.Text(g.W-g.MarginR-p.GetStringWidth(row[1]), y+9, row[1])
		y += 12
	}
	return y
}
