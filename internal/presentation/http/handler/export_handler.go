package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/billforge/billforge-api/internal/application/service"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams XLSX exports
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Transactions exports the filtered transactions as a workbook
func (h *ExportHandler) Transactions(c *gin.Context) {
	filter := repository.TransactionFilter{Search: c.Query("search")}
	if companyIDStr := c.Query("company_id"); companyIDStr != "" {
		if companyID, err := uuid.Parse(companyIDStr); err == nil {
			filter.CompanyID = &companyID
		}
	}

	file, err := h.exportService.ExportTransactions(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(200, xlsxContentType, file.Content)
}

// Clients exports the client directory as a workbook
func (h *ExportHandler) Clients(c *gin.Context) {
	file, err := h.exportService.ExportClients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(200, xlsxContentType, file.Content)
}
