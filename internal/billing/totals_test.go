package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTotals_Intrastate(t *testing.T) {
	company := Record{"addressState": "Karnataka", "gstin": "29X"}
	party := Record{"state": "Karnataka"}
	lines := []LineItem{
		{Amount: 1000, GSTPercentage: 18, LineTax: 180, LineTotal: 1180},
		{Amount: 500, LineTotal: 500},
	}

	totals := DeriveTotals(lines, company, party, nil)
	assert.InDelta(t, 1500, totals.Subtotal, 1e-9)
	assert.InDelta(t, 180, totals.Tax, 1e-9)
	assert.InDelta(t, 1680, totals.InvoiceTotal, 1e-9)
	assert.True(t, totals.GSTEnabled)
	assert.InDelta(t, 90, totals.CGSTTotal, 1e-9)
	assert.InDelta(t, 90, totals.SGSTTotal, 1e-9)
	assert.Zero(t, totals.IGSTTotal)
}

func TestDeriveTotals_GSTDisabledWithoutGSTIN(t *testing.T) {
	company := Record{"addressState": "Karnataka"}
	lines := []LineItem{
		{Amount: 1000, GSTPercentage: 18, LineTax: 180, LineTotal: 1180},
	}

	totals := DeriveTotals(lines, company, Record{"state": "Karnataka"}, nil)
	assert.False(t, totals.GSTEnabled)
	assert.Zero(t, totals.CGSTTotal)
	assert.Zero(t, totals.SGSTTotal)
	assert.Zero(t, totals.IGSTTotal)
	// Line-level figures still aggregate; only the GST split is suppressed.
	assert.InDelta(t, 180, totals.Tax, 1e-9)
}

func TestDeriveTotals_GSTDisabledWithZeroTax(t *testing.T) {
	company := Record{"addressState": "Karnataka", "gstin": "29X"}
	lines := []LineItem{{Amount: 750, LineTotal: 750}}

	totals := DeriveTotals(lines, company, Record{"state": "Karnataka"}, nil)
	assert.False(t, totals.GSTEnabled)
	assert.InDelta(t, 750, totals.InvoiceTotal, 1e-9)
}

func TestBuildInvoiceData(t *testing.T) {
	tx := Record{
		"products": []any{
			Record{"name": "Cable", "quantity": 2.0, "pricePerUnit": 250.0, "gstPercentage": 18.0, "hsn": "8544"},
		},
	}
	company := Record{"addressState": "Maharashtra", "gstin": "27X"}
	party := Record{"state": "Karnataka"}

	data := BuildInvoiceData(tx, company, party, nil, nil)
	require.Len(t, data.Lines, 1)
	assert.True(t, data.Interstate)
	assert.InDelta(t, 500, data.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 90, data.Totals.IGSTTotal, 1e-9)
	assert.Zero(t, data.Totals.CGSTTotal)
	assert.InDelta(t, 590, data.Totals.InvoiceTotal, 1e-9)
	assert.True(t, data.Totals.GSTEnabled)
}

func TestBuildInvoiceData_UnregisteredSupplier(t *testing.T) {
	tx := Record{"amount": 300.0}
	data := BuildInvoiceData(tx, Record{"addressState": "Goa"}, Record{"state": "Goa"}, nil, nil)
	assert.False(t, data.Interstate)
	assert.False(t, data.Totals.GSTEnabled)
	assert.InDelta(t, 300, data.Totals.InvoiceTotal, 1e-9)
}
