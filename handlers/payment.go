package handlers

import (
	"net/http"

	"hotelier/models"
	"hotelier/services/billing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes payment recording and lookup over HTTP.
type PaymentHandler struct {
	Service billing.BillingService
	Logger  *zap.Logger
}

func NewPaymentHandler(svc billing.BillingService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

type recordPaymentInput struct {
	Amount     float64 `json:"amount"`
	Method     string  `json:"method" binding:"required"`
	Reference  string  `json:"reference"`
	RecordedBy string  `json:"recordedBy"`
}

// RecordPaymentHandler allocates a payment against an invoice. An
// Idempotency-Key header makes retries replay the original payment.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var input recordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	payment, err := h.Service.RecordPayment(c.Request.Context(), billing.RecordPaymentRequest{
		InvoiceID:      c.Param("id"),
		Amount:         input.Amount,
		Method:         models.PaymentMethod(input.Method),
		Reference:      input.Reference,
		RecordedBy:     input.RecordedBy,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if payment == nil {
		// Zero-amount settle against an already paid invoice.
		c.JSON(http.StatusOK, gin.H{"status": "alreadyPaid"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	payment, err := h.Service.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	payments, err := h.Service.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
