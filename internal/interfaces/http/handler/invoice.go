package handler

import (
	"github.com/gin-gonic/gin"
	billingapp "github.com/hourbill/backend/internal/application/billing"
)

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// List returns the user's invoices, newest first, with clients embedded
func (h *InvoiceHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, gin.H{"invoices": invoices})
}

// Create generates an invoice from the completed entries in a period
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req billingapp.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing required fields")
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, gin.H{"invoice": invoice})
}

// Get returns an invoice with its line items recomputed from the
// stored period bounds
func (h *InvoiceHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	invoiceID, err := parseIDParam(c)
	if err != nil {
		h.NotFound(c, "Invoice not found")
		return
	}

	detail, err := h.invoiceService.Get(c.Request.Context(), userID, invoiceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, detail)
}

// SetPaid updates the invoice's paid flag
func (h *InvoiceHandler) SetPaid(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	invoiceID, err := parseIDParam(c)
	if err != nil {
		h.NotFound(c, "Invoice not found")
		return
	}

	var req billingapp.SetPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing required field: isPaid")
		return
	}

	if err := h.invoiceService.SetPaid(c.Request.Context(), userID, invoiceID, *req.IsPaid); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Invoice updated"})
}

// RegisterRoutes registers invoice routes on the given router group
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.List)
		invoices.POST("", h.Create)
		invoices.GET("/:id", h.Get)
		invoices.PATCH("/:id", h.SetPaid)
	}
}
