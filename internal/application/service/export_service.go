package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/billforge/billforge-api/internal/billing"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/pkg/pagination"
)

// ExportService produces XLSX workbooks for offline reporting
type ExportService struct {
	transactionRepo repository.TransactionRepository
	clientRepo      repository.ClientRepository
}

// NewExportService creates a new export service
func NewExportService(
	transactionRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
) *ExportService {
	return &ExportService{
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
	}
}

// ExportFile is a generated workbook ready for download.
type ExportFile struct {
	Filename string
	Content  []byte
}

// exportPageSize caps how many rows a single export fetches.
const exportPageSize = 10000

// ExportTransactions writes the filtered transactions with their derived
// totals into a workbook.
func (s *ExportService) ExportTransactions(ctx context.Context, filter repository.TransactionFilter) (*ExportFile, error) {
	params := &pagination.PaginationParams{Page: 1, PerPage: exportPageSize}
	txs, _, err := s.transactionRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Number", "Date", "Status", "Client", "Subtotal", "CGST", "SGST", "IGST", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, style)
	}

	for row, tx := range txs {
		data := billing.BuildInvoiceData(tx.Snapshot(), tx.Company.Snapshot(), tx.Client.Snapshot(), tx.ShippingRecord(), nil)

		values := []any{
			tx.Number,
			tx.Date.Format("2006-01-02"),
			tx.Status.String(),
			tx.Client.Name,
			data.Totals.Subtotal,
			data.Totals.CGSTTotal,
			data.Totals.SGSTTotal,
			data.Totals.IGSTTotal,
			data.Totals.InvoiceTotal,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "D", "D", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename: fmt.Sprintf("transactions-%s.xlsx", time.Now().Format("20060102")),
		Content:  buf.Bytes(),
	}, nil
}

// ExportClients writes the client directory into a workbook.
func (s *ExportService) ExportClients(ctx context.Context) (*ExportFile, error) {
	params := &pagination.PaginationParams{Page: 1, PerPage: exportPageSize}
	clients, _, err := s.clientRepo.List(ctx, params, "")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Clients"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Email", "Phone", "Address", "State", "GSTIN"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, style)
	}

	for row, c := range clients {
		values := []any{c.Name, strVal(c.Email), strVal(c.Phone), strVal(c.Address), strVal(c.State), strVal(c.GSTIN)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "D", "D", 36)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename: fmt.Sprintf("clients-%s.xlsx", time.Now().Format("20060102")),
		Content:  buf.Bytes(),
	}, nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
