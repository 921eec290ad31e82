package billing

// Totals aggregates normalized lines into invoice-level figures.
type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	InvoiceTotal float64 `json:"invoice_total"`
	GSTEnabled   bool    `json:"gst_enabled"`
	CGSTTotal    float64 `json:"cgst_total"`
	SGSTTotal    float64 `json:"sgst_total"`
	IGSTTotal    float64 `json:"igst_total"`
}

// DeriveTotals sums line amounts, taxes and totals, and accumulates the
// per-line GST breakdowns. GSTEnabled requires both a non-zero aggregate tax
// and a resolvable supplier GSTIN.
func DeriveTotals(lines []LineItem, company, party, shipping Record) Totals {
	var t Totals
	for _, l := range lines {
		t.Subtotal += l.Amount
		t.Tax += l.LineTax
		if l.LineTotal > 0 {
			t.InvoiceTotal += l.LineTotal
		} else {
			t.InvoiceTotal += l.Amount
		}

		bd := CalculateGST(l.Amount, l.GSTPercentage, company, party, shipping)
		t.CGSTTotal += bd.CGST
		t.SGSTTotal += bd.SGST
		t.IGSTTotal += bd.IGST
	}
	t.GSTEnabled = t.Tax > 0 && ResolveGSTIN(company) != ""
	return t
}

// InvoiceData is the one-call aggregation consumed by PDF templates: the
// normalized lines, derived totals, and the interstate flag that decides
// whether the tax columns read IGST or CGST/SGST.
type InvoiceData struct {
	Lines      []LineItem `json:"lines"`
	Totals     Totals     `json:"totals"`
	Interstate bool       `json:"interstate"`
}

// BuildInvoiceData normalizes a transaction snapshot and derives its totals
// in one pass.
func BuildInvoiceData(tx, company, party, shipping Record, serviceNames map[string]string) InvoiceData {
	lines := UnifiedLines(tx, serviceNames)
	return InvoiceData{
		Lines:      lines,
		Totals:     DeriveTotals(lines, company, party, shipping),
		Interstate: ResolveGSTIN(company) != "" && isInterstate(company, party, shipping),
	}
}
