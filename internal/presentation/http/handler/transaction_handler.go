package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/billforge/billforge-api/internal/application/service"
	"github.com/billforge/billforge-api/internal/billing"
	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/internal/presentation/http/dto/response"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// transactionRequest mirrors the loosely-typed invoice payload. Line items
// are accepted as raw objects and stored as submitted.
type transactionRequest struct {
	CompanyID     string           `json:"company_id"`
	ClientID      string           `json:"client_id"`
	Date          *time.Time       `json:"date"`
	DueDate       *time.Time       `json:"due_date"`
	Products      []billing.Record `json:"products"`
	Services      []billing.Record `json:"services"`
	Amount        *float64         `json:"amount"`
	GSTPercentage *float64         `json:"gstPercentage"`
	Description   *string          `json:"description"`
	Shipping      billing.Record   `json:"shipping"`
	Notes         *string          `json:"notes"`
	Template      string           `json:"template"`
}

func (r *transactionRequest) toInput() (*service.TransactionInput, error) {
	input := &service.TransactionInput{
		Date:          r.Date,
		DueDate:       r.DueDate,
		Products:      r.Products,
		Services:      r.Services,
		Amount:        r.Amount,
		GSTPercentage: r.GSTPercentage,
		Description:   r.Description,
		Shipping:      r.Shipping,
		NotesHTML:     r.Notes,
		TemplateKey:   r.Template,
	}
	if r.CompanyID != "" {
		id, err := uuid.Parse(r.CompanyID)
		if err != nil {
			return nil, err
		}
		input.CompanyID = id
	}
	if r.ClientID != "" {
		id, err := uuid.Parse(r.ClientID)
		if err != nil {
			return nil, err
		}
		input.ClientID = id
	}
	return input, nil
}

// List handles listing transactions with optional filters
func (h *TransactionHandler) List(c *gin.Context) {
	filter := repository.TransactionFilter{Search: c.Query("search")}

	if companyIDStr := c.Query("company_id"); companyIDStr != "" {
		if companyID, err := uuid.Parse(companyIDStr); err == nil {
			filter.CompanyID = &companyID
		}
	}
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		if clientID, err := uuid.Parse(clientIDStr); err == nil {
			filter.ClientID = &clientID
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, ok := parseStatus(statusStr); ok {
			filter.Status = &status
		}
	}

	result, err := h.transactionService.List(c.Request.Context(), pageParams(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Create handles creating a transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.CompanyID == "" || req.ClientID == "" {
		response.BadRequest(c, "company_id and client_id are required")
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "Invalid company or client ID")
		return
	}

	tx, err := h.transactionService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction created successfully", tx)
}

// Get handles getting a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.transactionService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", tx)
}

// Totals returns the normalized lines and derived totals for a transaction
func (h *TransactionHandler) Totals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	data, err := h.transactionService.Totals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals derived successfully", data)
}

// Update handles updating a draft transaction
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "Invalid company or client ID")
		return
	}

	tx, err := h.transactionService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction updated successfully", tx)
}

// UpdateStatus moves a transaction through its lifecycle
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := parseStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Unknown status")
		return
	}

	tx, err := h.transactionService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction status updated", tx)
}

// Delete handles deleting a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func parseStatus(s string) (enum.TransactionStatus, bool) {
	switch s {
	case "Draft":
		return enum.TransactionStatusDraft, true
	case "Issued":
		return enum.TransactionStatusIssued, true
	case "Paid":
		return enum.TransactionStatusPaid, true
	case "Cancelled":
		return enum.TransactionStatusCancelled, true
	default:
		return 0, false
	}
}
