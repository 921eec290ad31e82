package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveGSTIN(t *testing.T) {
	tests := []struct {
		name    string
		company Record
		want    string
	}{
		{"nil company", nil, ""},
		{"no gstin fields", Record{"name": "Acme"}, ""},
		{"canonical field", Record{"gstin": "27AAAAA0000A1Z5"}, "27AAAAA0000A1Z5"},
		{"camel variant", Record{"gstIn": "27B"}, "27B"},
		{"gstNumber variant", Record{"gstNumber": "27C"}, "27C"},
		{"snake variant", Record{"gst_no": "27D"}, "27D"},
		{"bare gst", Record{"gst": "27E"}, "27E"},
		{"gstinNumber variant", Record{"gstinNumber": "27F"}, "27F"},
		{"nested tax record", Record{"tax": map[string]any{"gstin": "27G"}}, "27G"},
		{
			name:    "priority order",
			company: Record{"gst": "LOW", "gstin": "HIGH"},
			want:    "HIGH",
		},
		{
			name:    "empty string falls through",
			company: Record{"gstin": "  ", "gstNumber": "27H"},
			want:    "27H",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveGSTIN(tt.company))
		})
	}
}

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Maharashtra", "maharashtra"},
		{"  Maharashtra  ", "maharashtra"},
		{"Maharashtra (27)", "maharashtra"},
		{"KARNATAKA (KA) ", "karnataka"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeState(tt.in), "NormalizeState(%q)", tt.in)
	}
}

func TestCalculateGST_NoGSTIN(t *testing.T) {
	company := Record{"addressState": "Maharashtra"}
	party := Record{"state": "Karnataka"}

	bd := CalculateGST(1000, 18, company, party, nil)
	assert.Equal(t, TaxBreakdown{}, bd)
	assert.False(t, bd.Applicable)
}

func TestCalculateGST_Intrastate(t *testing.T) {
	company := Record{"addressState": "Maharashtra", "gstin": "X"}
	party := Record{"state": "Maharashtra"}

	bd := CalculateGST(1000, 18, company, party, nil)
	assert.True(t, bd.Applicable)
	assert.False(t, bd.Interstate)
	assert.InDelta(t, 90, bd.CGST, 1e-9)
	assert.InDelta(t, 90, bd.SGST, 1e-9)
	assert.Zero(t, bd.IGST)
}

func TestCalculateGST_Interstate(t *testing.T) {
	company := Record{"addressState": "Maharashtra", "gstin": "X"}
	party := Record{"state": "Karnataka"}

	bd := CalculateGST(1000, 18, company, party, nil)
	assert.True(t, bd.Applicable)
	assert.True(t, bd.Interstate)
	assert.InDelta(t, 180, bd.IGST, 1e-9)
	assert.Zero(t, bd.CGST)
	assert.Zero(t, bd.SGST)
}

func TestCalculateGST_StateNormalization(t *testing.T) {
	company := Record{"addressState": "Maharashtra (27)", "gstin": "X"}
	party := Record{"state": "  maharashtra "}

	bd := CalculateGST(1000, 18, company, party, nil)
	assert.False(t, bd.Interstate)
	assert.InDelta(t, 90, bd.CGST, 1e-9)
}

func TestCalculateGST_ShippingStateWins(t *testing.T) {
	company := Record{"addressState": "Maharashtra", "gstin": "X"}
	party := Record{"state": "Maharashtra"}
	shipping := Record{"state": "Karnataka"}

	bd := CalculateGST(1000, 18, company, party, shipping)
	assert.True(t, bd.Interstate)
	assert.InDelta(t, 180, bd.IGST, 1e-9)

	// Shipping address without a state falls back to the billing party.
	bd = CalculateGST(1000, 18, company, party, Record{"city": "Pune"})
	assert.False(t, bd.Interstate)
}

func TestCalculateGST_MissingStates(t *testing.T) {
	// Neither side has a state recorded: "" matches "", so the split stays
	// intrastate rather than defaulting the whole tax to IGST.
	company := Record{"gstin": "X"}
	party := Record{"name": "No state recorded"}

	bd := CalculateGST(1000, 18, company, party, nil)
	assert.True(t, bd.Applicable)
	assert.False(t, bd.Interstate)
	assert.InDelta(t, 90, bd.CGST, 1e-9)
	assert.InDelta(t, 90, bd.SGST, 1e-9)
	assert.Zero(t, bd.IGST)

	// One resolved state against a missing one is still a mismatch.
	bd = CalculateGST(1000, 18, Record{"gstin": "X", "addressState": "Maharashtra"}, party, nil)
	assert.True(t, bd.Interstate)
	assert.InDelta(t, 180, bd.IGST, 1e-9)
}

func TestCalculateGST_ZeroRateStaysApplicable(t *testing.T) {
	company := Record{"addressState": "Maharashtra", "gstin": "X"}
	party := Record{"state": "Maharashtra"}

	bd := CalculateGST(1000, 0, company, party, nil)
	assert.True(t, bd.Applicable)
	assert.Zero(t, bd.CGST)
	assert.Zero(t, bd.SGST)
	assert.Zero(t, bd.IGST)
}
