package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/billforge/billforge-api/internal/billing"
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/pdf"
	"github.com/billforge/billforge-api/pkg/utils"
)

// InvoiceService turns stored transactions into printable PDF documents
type InvoiceService struct {
	transactionService *TransactionService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(transactionService *TransactionService) *InvoiceService {
	return &InvoiceService{transactionService: transactionService}
}

// InvoiceDocument is a rendered invoice ready for download.
type InvoiceDocument struct {
	Filename string
	Content  []byte
}

// GeneratePDF renders the transaction's invoice. templateKey overrides the
// template stored on the transaction when non-empty.
func (s *InvoiceService) GeneratePDF(ctx context.Context, id uuid.UUID, templateKey string) (*InvoiceDocument, error) {
	tx, err := s.transactionService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv := buildInvoiceView(tx)
	if templateKey == "" {
		templateKey = tx.TemplateKey
	}

	content, err := pdf.Generate(inv, templateKey)
	if err != nil {
		return nil, err
	}

	return &InvoiceDocument{
		Filename: invoiceFilename(tx),
		Content:  content,
	}, nil
}

// invoiceFilename names the download after the number and client,
// e.g. inv-2026-0001-beta-stores.pdf.
func invoiceFilename(tx *entity.Transaction) string {
	return utils.Slugify(tx.Number+" "+tx.Client.Name) + ".pdf"
}

// buildInvoiceView assembles the fully resolved view model the templates
// render, normalizing the stored line snapshots on the way.
func buildInvoiceView(tx *entity.Transaction) *pdf.Invoice {
	company := tx.Company
	client := tx.Client

	data := billing.BuildInvoiceData(
		tx.Snapshot(),
		company.Snapshot(),
		client.Snapshot(),
		tx.ShippingRecord(),
		nil,
	)

	inv := &pdf.Invoice{
		Number: tx.Number,
		Date:   tx.Date.Format("02 Jan 2006"),
		Status: tx.Status.String(),
		Company: pdf.CompanyInfo{
			Name:          company.Name,
			Address:       deref(company.Address),
			State:         deref(company.AddressState),
			GSTIN:         deref(company.GSTIN),
			PAN:           deref(company.PAN),
			Phone:         deref(company.Phone),
			Email:         deref(company.Email),
			BankName:      deref(company.BankName),
			AccountNumber: deref(company.AccountNumber),
			IFSC:          deref(company.IFSC),
		},
		Client: pdf.PartyInfo{
			Name:    client.Name,
			Address: deref(client.Address),
			State:   deref(client.State),
			GSTIN:   deref(client.GSTIN),
		},
		Data:      data,
		NotesHTML: deref(tx.NotesHTML),
	}
	if tx.DueDate != nil {
		inv.DueDate = tx.DueDate.Format("02 Jan 2006")
	}

	if ship := tx.ShippingRecord(); ship != nil {
		inv.Shipping = &pdf.PartyInfo{
			Name:    shipStr(ship, "name"),
			Address: shipStr(ship, "address"),
			State:   billing.NormalizeState(shipStr(ship, "state", "addressState")),
			GSTIN:   shipStr(ship, "gstin"),
		}
		if inv.Shipping.Name == "" {
			inv.Shipping.Name = client.Name
		}
	}

	return inv
}

func shipStr(r billing.Record, keys ...string) string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
