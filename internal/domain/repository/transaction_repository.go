package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/billforge/billforge-api/pkg/pagination"
)

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	CompanyID *uuid.UUID
	ClientID  *uuid.UUID
	Status    *enum.TransactionStatus
	Search    string
}

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	GetByNumber(ctx context.Context, number string) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, filter TransactionFilter) ([]entity.Transaction, int64, error)
	// CountForCompanyYear returns how many transactions the company issued in
	// the given calendar year, used for invoice numbering.
	CountForCompanyYear(ctx context.Context, companyID uuid.UUID, year int) (int64, error)
}
