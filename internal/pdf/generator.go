// Package pdf turns invoice data into printable documents. Layout templates
// are registered by key and selected per transaction; each template owns its
// page geometry and paints with the shared drawing helpers.
package pdf

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"github.com/billforge/billforge-api/internal/billing"
	"github.com/billforge/billforge-api/pkg/apperror"
)

// CompanyInfo is the issuing party as it should appear on the document.
type CompanyInfo struct {
	Name          string
	Address       string
	State         string
	GSTIN         string
	PAN           string
	Phone         string
	Email         string
	BankName      string
	AccountNumber string
	IFSC          string
}

// PartyInfo is a billed or shipped-to party.
type PartyInfo struct {
	Name    string
	Address string
	State   string
	GSTIN   string
}

// Invoice is the fully resolved view model a template renders. Data carries
// the normalized lines and totals; NotesHTML is rendered through the rich
// text engine at the bottom of the document.
type Invoice struct {
	Number    string
	Date      string
	DueDate   string
	Status    string
	Company   CompanyInfo
	Client    PartyInfo
	Shipping  *PartyInfo
	Data      billing.InvoiceData
	NotesHTML string
}

// Template renders one invoice layout.
type Template interface {
	Key() string
	Render(inv *Invoice) (*gofpdf.Fpdf, error)
}

const DefaultTemplate = "classic"

var templates = map[string]Template{
	"classic": classicTemplate{},
	"compact": compactTemplate{},
	"thermal": thermalTemplate{},
}

// TemplateKeys returns the registered template keys in sorted order.
func TemplateKeys() []string {
	keys := make([]string, 0, len(templates))
	for k := range templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Generate renders the invoice with the named template and returns the PDF
// bytes. An empty key falls back to the default template.
func Generate(inv *Invoice, key string) ([]byte, error) {
	if key == "" {
		key = DefaultTemplate
	}
	tpl, ok := templates[key]
	if !ok {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("unknown invoice template %q", key))
	}
	doc, err := tpl.Render(inv)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func qty(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
