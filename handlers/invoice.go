package handlers

import (
	"net/http"

	"hotelier/models"
	"hotelier/services/billing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes the invoice lifecycle over HTTP.
type InvoiceHandler struct {
	Service billing.BillingService
	Logger  *zap.Logger
}

func NewInvoiceHandler(svc billing.BillingService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{Service: svc, Logger: logger}
}

type generateInvoiceInput struct {
	BookingID   string `json:"bookingId" binding:"required"`
	GeneratedBy string `json:"generatedBy"`
	Items       []struct {
		Description string  `json:"description"`
		Type        string  `json:"type"`
		Quantity    float64 `json:"quantity"`
		UnitPrice   float64 `json:"unitPrice"`
	} `json:"items"`
}

// GenerateInvoiceHandler issues an invoice for a booking. With no items
// supplied, a single room-charge line is derived from the stay.
func (h *InvoiceHandler) GenerateInvoiceHandler(c *gin.Context) {
	var input generateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	items := make([]billing.InvoiceItemInput, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, billing.InvoiceItemInput{
			Description: it.Description,
			Type:        models.InvoiceItemType(it.Type),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	invoice, err := h.Service.GenerateInvoice(c.Request.Context(), input.BookingID, items, input.GeneratedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) GetInvoiceHandler(c *gin.Context) {
	invoice, err := h.Service.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) GetOutstandingBalanceHandler(c *gin.Context) {
	outstanding, err := h.Service.GetOutstandingBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoiceId": c.Param("id"), "outstanding": outstanding})
}

func (h *InvoiceHandler) CancelInvoiceHandler(c *gin.Context) {
	invoice, err := h.Service.CancelInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) MarkInvoiceOverdueHandler(c *gin.Context) {
	invoice, err := h.Service.MarkInvoiceOverdue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
