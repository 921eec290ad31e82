package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/billforge/billforge-api/internal/billing"
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/pkg/pagination"
)

type stubTransactionRepo struct {
	txs []entity.Transaction
}

func (s *stubTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error { return nil }
func (s *stubTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (s *stubTransactionRepo) GetByNumber(ctx context.Context, number string) (*entity.Transaction, error) {
	return nil, nil
}
func (s *stubTransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error { return nil }
func (s *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (s *stubTransactionRepo) List(ctx context.Context, params *pagination.PaginationParams, filter repository.TransactionFilter) ([]entity.Transaction, int64, error) {
	return s.txs, int64(len(s.txs)), nil
}
func (s *stubTransactionRepo) CountForCompanyYear(ctx context.Context, companyID uuid.UUID, year int) (int64, error) {
	return 0, nil
}

type stubClientRepo struct {
	clients []entity.Client
}

func (s *stubClientRepo) Create(ctx context.Context, client *entity.Client) error { return nil }
func (s *stubClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	return nil, nil
}
func (s *stubClientRepo) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	return nil, nil
}
func (s *stubClientRepo) Update(ctx context.Context, client *entity.Client) error { return nil }
func (s *stubClientRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (s *stubClientRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	return s.clients, int64(len(s.clients)), nil
}

func strp(s string) *string { return &s }

func TestExportTransactions_TaxColumnsCarrySplit(t *testing.T) {
	tx := entity.Transaction{
		Number: "INV-2026-0001",
		Status: enum.TransactionStatusIssued,
		Date:   time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Products: []billing.Record{
			{"name": "Cable", "quantity": 1.0, "pricePerUnit": 1000.0, "gstPercentage": 18.0},
		},
		Company: entity.Company{
			Name:         "Acme Traders",
			AddressState: strp("Karnataka"),
			GSTIN:        strp("29AAAAA0000A1Z5"),
		},
		Client: entity.Client{
			Name:  "Beta Stores",
			State: strp("Karnataka"),
		},
	}

	svc := NewExportService(&stubTransactionRepo{txs: []entity.Transaction{tx}}, &stubClientRepo{})
	file, err := svc.ExportTransactions(context.Background(), repository.TransactionFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, file.Content)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	// Intrastate supply: the supplier-side split must land in CGST/SGST.
	cgst, err := wb.GetCellValue("Transactions", "F2")
	require.NoError(t, err)
	sgst, err := wb.GetCellValue("Transactions", "G2")
	require.NoError(t, err)
	igst, err := wb.GetCellValue("Transactions", "H2")
	require.NoError(t, err)
	total, err := wb.GetCellValue("Transactions", "I2")
	require.NoError(t, err)

	assert.Equal(t, "90", cgst)
	assert.Equal(t, "90", sgst)
	assert.Equal(t, "0", igst)
	assert.Equal(t, "1180", total)
}

func TestExportClients_WritesDirectory(t *testing.T) {
	clients := []entity.Client{
		{Name: "Beta Stores", Email: strp("beta@example.com"), State: strp("Karnataka")},
	}

	svc := NewExportService(&stubTransactionRepo{}, &stubClientRepo{clients: clients})
	file, err := svc.ExportClients(context.Background())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	name, err := wb.GetCellValue("Clients", "A2")
	require.NoError(t, err)
	email, err := wb.GetCellValue("Clients", "B2")
	require.NoError(t, err)

	assert.Equal(t, "Beta Stores", name)
	assert.Equal(t, "beta@example.com", email)
}
