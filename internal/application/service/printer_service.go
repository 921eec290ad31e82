package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/billforge/billforge-api/internal/billing"
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer            printer.Printer
	transactionService *TransactionService
	printerType        string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	transactionService *TransactionService,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:            p,
		transactionService: transactionService,
		printerType:        printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			BusinessName: "PRINTER TEST",
			Address:      "Test Address",
			Phone:        "+91 00000 00000",
		},
		InvoiceNo: "TEST-001",
		Date:      "Test Date",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Total:    20.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintTransactionReceipt fetches a transaction, normalizes its lines and
// prints the receipt.
func (s *PrinterService) PrintTransactionReceipt(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	tx, err := s.transactionService.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	company := tx.Company
	data := billing.BuildInvoiceData(
		tx.Snapshot(),
		company.Snapshot(),
		tx.Client.Snapshot(),
		tx.ShippingRecord(),
		nil,
	)

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			BusinessName: company.Name,
		},
		InvoiceNo: tx.Number,
		Date:      tx.Date.Format("2006-01-02 15:04"),
		Client:    tx.Client.Name,
		SubTotal:  data.Totals.Subtotal,
		CGST:      data.Totals.CGSTTotal,
		SGST:      data.Totals.SGSTTotal,
		IGST:      data.Totals.IGSTTotal,
		Total:     data.Totals.InvoiceTotal,
	}
	if company.Address != nil {
		receipt.Header.Address = *company.Address
	}
	if company.Phone != nil {
		receipt.Header.Phone = *company.Phone
	}
	if company.GSTIN != nil {
		receipt.Header.GSTIN = *company.GSTIN
	}

	for _, l := range data.Lines {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.PricePerUnit,
			Total:     l.LineTotal,
		})
	}

	bytes := FormatReceipt(receipt)
	if err := s.printer.Print(bytes); err != nil {
		log.Printf("Printer error (transaction %s): %v", transactionID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(48) // 80mm paper = 48 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.BusinessName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date)

	if r.Client != "" {
		doc.KeyValue("Client:", r.Client)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.CGST > 0 {
		doc.KeyValue("CGST:", fmt.Sprintf("%.2f", r.CGST))
	}
	if r.SGST > 0 {
		doc.KeyValue("SGST:", fmt.Sprintf("%.2f", r.SGST))
	}
	if r.IGST > 0 {
		doc.KeyValue("IGST:", fmt.Sprintf("%.2f", r.IGST))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
