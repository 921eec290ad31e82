package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/billforge/billforge-api/internal/billing"
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/pkg/apperror"
	"github.com/billforge/billforge-api/pkg/pagination"
	"github.com/billforge/billforge-api/pkg/utils"
)

// TransactionService handles invoice transaction operations
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	companyRepo     repository.CompanyRepository
	clientRepo      repository.ClientRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		companyRepo:     companyRepo,
		clientRepo:      clientRepo,
	}
}

// TransactionInput represents create/update input for a transaction. Line
// items arrive as free-form records and are stored as submitted; the billing
// package normalizes them whenever totals or documents are produced.
type TransactionInput struct {
	CompanyID     uuid.UUID
	ClientID      uuid.UUID
	Date          *time.Time
	DueDate       *time.Time
	Products      []billing.Record
	Services      []billing.Record
	Amount        *float64
	GSTPercentage *float64
	Description   *string
	Shipping      billing.Record
	NotesHTML     *string
	TemplateKey   string
}

// Create creates a new transaction with a generated sequential number
func (s *TransactionService) Create(ctx context.Context, input *TransactionInput) (*entity.Transaction, error) {
	company, err := s.companyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	seq, err := s.transactionRepo.CountForCompanyYear(ctx, company.ID, date.Year())
	if err != nil {
		return nil, err
	}

	tx := &entity.Transaction{
		CompanyID:     company.ID,
		ClientID:      client.ID,
		Number:        utils.FormatInvoiceNumber(company.InvoicePrefix, date.Year(), seq+1),
		Status:        enum.TransactionStatusDraft,
		Date:          date,
		DueDate:       input.DueDate,
		Products:      input.Products,
		Services:      input.Services,
		Amount:        input.Amount,
		GSTPercentage: input.GSTPercentage,
		Description:   input.Description,
		Shipping:      input.Shipping,
		NotesHTML:     input.NotesHTML,
		TemplateKey:   input.TemplateKey,
	}
	if tx.TemplateKey == "" {
		tx.TemplateKey = "classic"
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetByID returns a transaction with its company and client preloaded
func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// Update updates a draft transaction. Issued invoices are immutable apart
// from their status.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, input *TransactionInput) (*entity.Transaction, error) {
	tx, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.Status != enum.TransactionStatusDraft {
		return nil, apperror.NewBadRequestError("Only draft transactions can be edited")
	}

	if input.ClientID != uuid.Nil && input.ClientID != tx.ClientID {
		client, err := s.clientRepo.GetByID(ctx, input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		tx.ClientID = client.ID
	}

	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.DueDate != nil {
		tx.DueDate = input.DueDate
	}
	if input.Products != nil {
		tx.Products = input.Products
	}
	if input.Services != nil {
		tx.Services = input.Services
	}
	if input.Amount != nil {
		tx.Amount = input.Amount
	}
	if input.GSTPercentage != nil {
		tx.GSTPercentage = input.GSTPercentage
	}
	if input.Description != nil {
		tx.Description = input.Description
	}
	if input.Shipping != nil {
		tx.Shipping = input.Shipping
	}
	if input.NotesHTML != nil {
		tx.NotesHTML = input.NotesHTML
	}
	if input.TemplateKey != "" {
		tx.TemplateKey = input.TemplateKey
	}

	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// UpdateStatus moves a transaction through its lifecycle
func (s *TransactionService) UpdateStatus(ctx context.Context, id uuid.UUID, target enum.TransactionStatus) (*entity.Transaction, error) {
	tx, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !tx.Status.CanTransitionTo(target) {
		return nil, apperror.NewBadRequestError(
			"Cannot move transaction from " + tx.Status.String() + " to " + target.String())
	}

	tx.Status = target
	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Delete removes a transaction. Only drafts and cancelled invoices may be
// deleted.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tx.Status == enum.TransactionStatusIssued || tx.Status == enum.TransactionStatusPaid {
		return apperror.NewBadRequestError("Issued transactions cannot be deleted")
	}
	return s.transactionRepo.Delete(ctx, id)
}

// List returns transactions with pagination and filtering
func (s *TransactionService) List(ctx context.Context, params *pagination.PaginationParams, filter repository.TransactionFilter) (*pagination.PaginatedResult[entity.Transaction], error) {
	txs, total, err := s.transactionRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(txs, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Totals normalizes the transaction's stored line items and derives its
// totals with the GST split.
func (s *TransactionService) Totals(ctx context.Context, id uuid.UUID) (*billing.InvoiceData, error) {
	tx, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data := billing.BuildInvoiceData(
		tx.Snapshot(),
		tx.Company.Snapshot(),
		tx.Client.Snapshot(),
		tx.ShippingRecord(),
		nil,
	)
	return &data, nil
}
