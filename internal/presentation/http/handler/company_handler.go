package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/billforge/billforge-api/internal/application/service"
	"github.com/billforge/billforge-api/internal/presentation/http/dto/response"
)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

type companyRequest struct {
	Name          string  `json:"name"`
	Address       *string `json:"address"`
	AddressState  *string `json:"addressState"`
	GSTIN         *string `json:"gstin"`
	PAN           *string `json:"pan"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	BankName      *string `json:"bank_name"`
	AccountNumber *string `json:"account_number"`
	IFSC          *string `json:"ifsc"`
	InvoicePrefix string  `json:"invoice_prefix"`
}

func (r *companyRequest) toInput() *service.CompanyInput {
	return &service.CompanyInput{
		Name:          r.Name,
		Address:       r.Address,
		AddressState:  r.AddressState,
		GSTIN:         r.GSTIN,
		PAN:           r.PAN,
		Phone:         r.Phone,
		Email:         r.Email,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		IFSC:          r.IFSC,
		InvoicePrefix: r.InvoicePrefix,
	}
}

// List handles listing companies
func (h *CompanyHandler) List(c *gin.Context) {
	result, err := h.companyService.List(c.Request.Context(), pageParams(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Companies retrieved successfully", result)
}

// Create handles creating a company
func (h *CompanyHandler) Create(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Company created successfully", company)
}

// Get handles getting a single company
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	company, err := h.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company retrieved successfully", company)
}

// Update handles updating a company
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company updated successfully", company)
}

// Delete handles deleting a company
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
