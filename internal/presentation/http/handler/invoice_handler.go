package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scrubkh/invoice-api/internal/application/service"
	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/internal/presentation/http/dto/response"
	"github.com/scrubkh/invoice-api/pkg/currency"
)

// InvoiceHandler handles preview, export and share requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	exportService  *service.ExportService
	shareService   *service.ShareService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(
	invoiceService *service.InvoiceService,
	exportService *service.ExportService,
	shareService *service.ShareService,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		exportService:  exportService,
		shareService:   shareService,
	}
}

// bindOptionalDraft reads a draft from the request body when one is
// posted; an empty body means "use the saved slot".
func bindOptionalDraft(c *gin.Context) (*entity.Draft, bool) {
	if c.Request.ContentLength == 0 {
		return nil, true
	}
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return nil, false
	}
	return req.ToDraft(), true
}

// Preview handles finalizing a draft into an invoice snapshot
func (h *InvoiceHandler) Preview(c *gin.Context) {
	draft, ok := bindOptionalDraft(c)
	if !ok {
		return
	}

	preview, err := h.invoiceService.Preview(c.Request.Context(), draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice preview generated", preview)
}

// Export handles rendering and downloading an export artifact
func (h *InvoiceHandler) Export(c *gin.Context) {
	draft, ok := bindOptionalDraft(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", service.FormatPNG)

	result, err := h.exportService.Export(c.Request.Context(), draft, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// Share handles building the share payload
func (h *InvoiceHandler) Share(c *gin.Context) {
	draft, ok := bindOptionalDraft(c)
	if !ok {
		return
	}

	payload, err := h.shareService.BuildShare(c.Request.Context(), draft)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Share payload generated", payload)
}

// parseAmount is the lenient numeric boundary: free-typed text in,
// usable number out, junk coerced to 0.
func parseAmount(s string) float64 {
	return currency.ParseAmount(s)
}
