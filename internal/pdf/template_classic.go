package pdf

import (
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// classicTemplate is the full A4 layout: header with company identity, billed
// and shipped-to blocks, an itemized table with a GST split, totals, notes
// and bank details.
type classicTemplate struct{}

func (classicTemplate) Key() string { return "classic" }

func (t classicTemplate) Render(inv *Invoice) (*gofpdf.Fpdf, error) {
	p := gofpdf.New("P", "pt", "A4", "")
	p.SetAutoPageBreak(false, 0)
	tr := p.UnicodeTranslatorFromDescriptor("")

	g := pageGeom{W: 595.28, H: 841.89, MarginL: 40, MarginR: 40, MarginT: 40, MarginB: 50}

	header := func(firstPage bool) float64 {
		y := g.MarginT
		p.SetTextColor(0, 0, 0)
		p.SetFont("Helvetica", "B", 16)
		p.Text(g.MarginL, y+16, tr(inv.Company.Name))

		p.SetFont("Helvetica", "B", 12)
		title := "TAX INVOICE"
		if !inv.Data.Totals.GSTEnabled {
			title = "INVOICE"
		}
		p.Text(g.W-g.MarginR-p.GetStringWidth(title), y+16, title)
		y += 16

		p.SetFont("Helvetica", "", 9)
		for _, line := range companyLines(inv.Company) {
			y += 12
			p.Text(g.MarginL, y, tr(line))
		}

		meta := []string{"Invoice No: " + inv.Number, "Date: " + inv.Date}
		if inv.DueDate != "" {
			meta = append(meta, "Due: "+inv.DueDate)
		}
		my := g.MarginT + 16
		for _, m := range meta {
			my += 12
			p.Text(g.W-g.MarginR-p.GetStringWidth(m), my, tr(m))
		}
		if my > y {
			y = my
		}

		y += 10
		p.SetDrawColor(60, 60, 60)
		p.Line(g.MarginL, y, g.W-g.MarginR, y)
		return y + 12
	}

	p.AddPage()
	y := header(true)

	y = t.partyBlocks(p, inv, g, y)
	y = t.itemsTable(p, inv, g, y, func() float64 {
		p.AddPage()
		return header(false)
	})
	y = t.totalsBlock(p, inv, g, y)

	contentTop := g.MarginT + 90
	y = drawNotes(p, inv, g, y+14, contentTop, 9, func(bool) { header(false) })

	t.footer(p, inv, g, y)
	return p, p.Error()
}

func (classicTemplate) partyBlocks(p *gofpdf.Fpdf, inv *Invoice, g pageGeom, y float64) float64 {
	tr := p.UnicodeTranslatorFromDescriptor("")
	colW := g.contentWidth() / 2

	draw := func(x float64, label string, lines []string) float64 {
		cy := y
		p.SetFont("Helvetica", "B", 9)
		p.Text(x, cy+9, label)
		cy += 13
		p.SetFont("Helvetica", "", 9)
		for _, line := range lines {
			p.Text(x, cy+9, tr(truncate(p, line, colW-10)))
			cy += 12
		}
		return cy
	}

	left := draw(g.MarginL, "Bill To", partyLines(inv.Client))
	right := y
	if inv.Shipping != nil {
		right = draw(g.MarginL+colW, "Ship To", partyLines(*inv.Shipping))
	}
	if right > left {
		left = right
	}
	return left + 14
}

// tableCols returns the column layout, which depends on whether GST applies
// and on which side of the state boundary the supply falls.
func (classicTemplate) tableCols(inv *Invoice, g pageGeom) ([]string, []float64) {
	heads := []string{"#", "Item", "HSN/SAC", "Qty", "Unit", "Rate", "Amount"}
	widths := []float64{22, 0, 60, 36, 42, 56, 62}
	if inv.Data.Totals.GSTEnabled {
		if inv.Data.Interstate {
			heads = append(heads, "IGST", "Total")
			widths = append(widths, 52, 62)
		} else {
			heads = append(heads, "CGST", "SGST", "Total")
			widths = append(widths, 46, 46, 62)
		}
	} else {
		heads = append(heads, "Total")
		widths = append(widths, 62)
	}
	fixed := 0.0
	for _, w := range widths {
		fixed += w
	}
	widths[1] = g.contentWidth() - fixed
	return heads, widths
}

func (t classicTemplate) itemsTable(p *gofpdf.Fpdf, inv *Invoice, g pageGeom, y float64, newPage func() float64) float64 {
	tr := p.UnicodeTranslatorFromDescriptor("")
	heads, widths := t.tableCols(inv, g)

	head := func(cy float64) float64 {
		p.SetFillColor(235, 235, 235)
		p.SetFont("Helvetica", "B", 8)
		p.SetXY(g.MarginL, cy)
		for i, h := range heads {
			align := "L"
			if i >= 3 {
				align = "R"
			}
			p.CellFormat(widths[i], 16, h, "1", 0, align, true, 0, "")
		}
		return cy + 16
	}

	y = head(y)
	p.SetFont("Helvetica", "", 8)

	for i, line := range inv.Data.Lines {
		rowH := 14.0
		if line.Description != "" {
			rowH = 24
		}
		if y+rowH > g.H-g.MarginB-60 {
			y = head(newPage())
			p.SetFont("Helvetica", "", 8)
		}

		cells := []string{
			strconv.Itoa(i + 1),
			truncate(p, tr(line.Name), widths[1]-6),
			line.Code,
			qty(line.Quantity),
			tr(line.Unit),
			money(line.PricePerUnit),
			money(line.Amount),
		}
		if inv.Data.Totals.GSTEnabled {
			half := line.LineTax / 2
			if inv.Data.Interstate {
				cells = append(cells, money(line.LineTax), money(line.LineTotal))
			} else {
				cells = append(cells, money(half), money(half), money(line.LineTotal))
			}
		} else {
			cells = append(cells, money(line.LineTotal))
		}

		p.SetXY(g.MarginL, y)
		for c, v := range cells {
			align := "L"
			if c >= 3 {
				align = "R"
			}
			p.CellFormat(widths[c], rowH, v, "1", 0, align, false, 0, "")
		}
		if line.Description != "" {
			p.SetFont("Helvetica", "I", 7)
			p.Text(g.MarginL+widths[0]+4, y+20, tr(truncate(p, line.Description, widths[1]-8)))
			p.SetFont("Helvetica", "", 8)
		}
		y += rowH
	}
	return y + 10
}

func (classicTemplate) totalsBlock(p *gofpdf.Fpdf, inv *Invoice, g pageGeom, y float64) float64 {
	tot := inv.Data.Totals
	rows := [][2]string{{"Subtotal", money(tot.Subtotal)}}
	if tot.GSTEnabled {
		if inv.Data.Interstate {
			rows = append(rows, [2]string{"IGST", money(tot.IGSTTotal)})
		} else {
			rows = append(rows,
				[2]string{"CGST", money(tot.CGSTTotal)},
				[2]string{"SGST", money(tot.SGSTTotal)})
		}
	}
	rows = append(rows, [2]string{"Total", money(tot.InvoiceTotal)})

	labelX := g.W - g.MarginR - 180
	for i, row := range rows {
		style := ""
		if i == len(rows)-1 {
			style = "B"
			p.Line(labelX, y+2, g.W-g.MarginR, y+2)
			y += 4
		}
		p.SetFont("Helvetica", style, 9)
		p.Text(labelX, y+10, row[0])
		p.Text(g.W-g.MarginR-p.GetStringWidth(row[1]), y+10, row[1])
		y += 14
	}
	return y
}

func (classicTemplate) footer(p *gofpdf.Fpdf, inv *Invoice, g pageGeom, y float64) {
	tr := p.UnicodeTranslatorFromDescriptor("")
	if y > g.H-g.MarginB-70 {
		p.AddPage()
		y = g.MarginT
	}
	y = g.H - g.MarginB - 58

	if inv.Company.BankName != "" {
		p.SetFont("Helvetica", "B", 8)
		p.Text(g.MarginL, y, "Bank Details")
		p.SetFont("Helvetica", "", 8)
		p.Text(g.MarginL, y+11, tr("Bank: "+inv.Company.BankName))
		p.Text(g.MarginL, y+22, "A/C: "+inv.Company.AccountNumber)
		p.Text(g.MarginL, y+33, "IFSC: "+inv.Company.IFSC)
	}

	p.SetFont("Helvetica", "", 8)
	sig := "Authorised Signatory"
	p.Text(g.W-g.MarginR-p.GetStringWidth(sig), y+33, sig)
	p.Line(g.W-g.MarginR-110, y+22, g.W-g.MarginR, y+22)

	p.SetFont("Helvetica", "I", 7)
	tag := "This is a computer generated invoice."
	p.Text(g.MarginL+(g.contentWidth()-p.GetStringWidth(tag))/2, g.H-g.MarginB+14, tag)
}

func companyLines(c CompanyInfo) []string {
	var lines []string
	if c.Address != "" {
		lines = append(lines, c.Address)
	}
	if c.GSTIN != "" {
		lines = append(lines, "GSTIN: "+c.GSTIN)
	}
	if c.PAN != "" {
		lines = append(lines, "PAN: "+c.PAN)
	}
	contact := c.Phone
	if c.Email != "" {
		if contact != "" {
			contact += " | "
		}
		contact += c.Email
	}
	if contact != "" {
		lines = append(lines, contact)
	}
	return lines
}
