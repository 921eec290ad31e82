package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/pkg/apperror"
	"github.com/billforge/billforge-api/pkg/pagination"
)

// CompanyService handles company profile operations
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// CompanyInput represents create/update input for a company
type CompanyInput struct {
	Name          string
	Address       *string
	AddressState  *string
	GSTIN         *string
	PAN           *string
	Phone         *string
	Email         *string
	BankName      *string
	AccountNumber *string
	IFSC          *string
	InvoicePrefix string
}

// Create creates a new company profile
func (s *CompanyService) Create(ctx context.Context, input *CompanyInput) (*entity.Company, error) {
	company := &entity.Company{
		Name:          input.Name,
		Address:       input.Address,
		AddressState:  input.AddressState,
		GSTIN:         input.GSTIN,
		PAN:           input.PAN,
		Phone:         input.Phone,
		Email:         input.Email,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		IFSC:          input.IFSC,
	}
	if input.InvoicePrefix != "" {
		company.InvoicePrefix = input.InvoicePrefix
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID returns a company by ID
func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}
	return company, nil
}

// Update updates a company profile
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, input *CompanyInput) (*entity.Company, error) {
	company, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		company.Name = input.Name
	}
	if input.Address != nil {
		company.Address = input.Address
	}
	if input.AddressState != nil {
		company.AddressState = input.AddressState
	}
	if input.GSTIN != nil {
		company.GSTIN = input.GSTIN
	}
	if input.PAN != nil {
		company.PAN = input.PAN
	}
	if input.Phone != nil {
		company.Phone = input.Phone
	}
	if input.Email != nil {
		company.Email = input.Email
	}
	if input.BankName != nil {
		company.BankName = input.BankName
	}
	if input.AccountNumber != nil {
		company.AccountNumber = input.AccountNumber
	}
	if input.IFSC != nil {
		company.IFSC = input.IFSC
	}
	if input.InvoicePrefix != "" {
		company.InvoicePrefix = input.InvoicePrefix
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes a company profile
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return apperror.NewNotFoundError("Company")
	}
	return s.companyRepo.Delete(ctx, id)
}

// List returns companies with pagination
func (s *CompanyService) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Company], error) {
	companies, total, err := s.companyRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(companies, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
