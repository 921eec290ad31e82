package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billforge/billforge-api/internal/billing"
)

func sampleInvoice() *Invoice {
	return &Invoice{
		Number:  "INV-2026-0042",
		Date:    "2026-08-01",
		DueDate: "2026-08-31",
		Company: CompanyInfo{
			Name:          "Acme Traders",
			Address:       "12 MG Road, Bengaluru",
			State:         "Karnataka",
			GSTIN:         "29ABCDE1234F1Z5",
			PAN:           "ABCDE1234F",
			Phone:         "+91 98765 43210",
			Email:         "billing@acme.example",
			BankName:      "State Bank",
			AccountNumber: "000111222333",
			IFSC:          "SBIN0001234",
		},
		Client: PartyInfo{
			Name:    "Globex Pvt Ltd",
			Address: "7 Park Street, Mumbai",
			State:   "Maharashtra",
			GSTIN:   "27ZYXWV9876K1Z2",
		},
		Data: billing.InvoiceData{
			Lines: []billing.LineItem{
				{ItemType: billing.ItemTypeProduct, Name: "Widget", Quantity: 2, Unit: "piece",
					PricePerUnit: 100, Amount: 200, GSTPercentage: 18, LineTax: 36, LineTotal: 236, Code: "8471"},
				{ItemType: billing.ItemTypeService, Name: "Installation", Quantity: 1,
					PricePerUnit: 500, Amount: 500, GSTPercentage: 18, LineTax: 90, LineTotal: 590},
			},
			Totals: billing.Totals{
				Subtotal: 700, Tax: 126, InvoiceTotal: 826,
				GSTEnabled: true, IGSTTotal: 126,
			},
			Interstate: true,
		},
		NotesHTML: `<p><strong>Terms:</strong> payment due in 30 days.</p>` +
			`<ol><li>Goods once sold are not returnable.</li><li>Interest at 18% p.a. on late payment.</li></ol>`,
	}
}

func TestGenerate_AllTemplates(t *testing.T) {
	inv := sampleInvoice()
	for _, key := range TemplateKeys() {
		t.Run(key, func(t *testing.T) {
			out, err := Generate(inv, key)
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.Equal(t, "%PDF", string(out[:4]))
		})
	}
}

func TestGenerate_DefaultsToClassic(t *testing.T) {
	out, err := Generate(sampleInvoice(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerate_UnknownTemplate(t *testing.T) {
	_, err := Generate(sampleInvoice(), "fancy")
	assert.Error(t, err)
}

func TestGenerate_ManyLinesPaginate(t *testing.T) {
	inv := sampleInvoice()
	var lines []billing.LineItem
	for i := 0; i < 80; i++ {
		lines = append(lines, billing.LineItem{
			ItemType: billing.ItemTypeProduct, Name: "Bulk item", Quantity: 1,
			PricePerUnit: 10, Amount: 10, LineTotal: 10,
		})
	}
	inv.Data.Lines = lines

	out, err := Generate(inv, "classic")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestThermal_LongNotesGrowStrip(t *testing.T) {
	inv := sampleInvoice()
	var sb strings.Builder
	sb.WriteString("<p>")
	for i := 0; i < 60; i++ {
		sb.WriteString("All goods remain the property of the seller until the invoice is settled in full. ")
	}
	sb.WriteString("</p>")
	inv.NotesHTML = sb.String()

	long, err := thermalTemplate{}.Render(inv)
	require.NoError(t, err)
	// The receipt is one continuous strip; wrapped notes must stretch the
	// strip rather than wrap back over the header.
	assert.Equal(t, 1, long.PageCount())

	short := sampleInvoice()
	short.NotesHTML = "<p>Thank you.</p>"
	brief, err := thermalTemplate{}.Render(short)
	require.NoError(t, err)

	_, longH := long.GetPageSize()
	_, briefH := brief.GetPageSize()
	assert.Greater(t, longH, briefH+300)
}

func TestTemplateKeys(t *testing.T) {
	assert.Equal(t, []string{"classic", "compact", "thermal"}, TemplateKeys())
}
