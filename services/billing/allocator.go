package billing

import (
	"context"
	"time"

	"hotelier/models"
	"hotelier/services/booking"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OverpaymentTolerance is the absolute margin above the outstanding
// balance a payment may carry, absorbing currency rounding.
const OverpaymentTolerance = 0.01

// paidEpsilon guards float summation noise when deciding whether the
// aggregate paid amount has reached the booking's total.
const paidEpsilon = 1e-9

// RecordPayment allocates one payment against an invoice.
//
// Validation failures abort before any write. The payment insert, the
// invoice recompute and the booking completion cascade run as one atomic
// unit: either all three commit or none do.
func (svc *DefaultBillingService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*models.Payment, error) {
	logger := utils.GetLogger()

	if req.Amount < 0 {
		return nil, utils.NewInvalidArgument("payment amount cannot be negative")
	}
	if !req.Method.IsValid() {
		return nil, utils.NewInvalidArgument("unknown payment method " + req.Method.String())
	}
	if req.RecordedBy != "" {
		if exists, err := svc.Staff.Exists(ctx, req.RecordedBy); err != nil {
			return nil, err
		} else if !exists {
			return nil, utils.NewNotFound("staff", req.RecordedBy)
		}
	}

	if req.Amount == 0 {
		// A zero-amount "mark as paid" against an already settled invoice
		// is accepted without touching any state.
		invoice, err := svc.Invoices.GetByID(ctx, req.InvoiceID)
		if err != nil {
			return nil, err
		}
		if invoice.Status == models.InvoiceStatusPaid {
			return nil, nil
		}
		return nil, utils.NewInvalidArgument("payment amount must be positive")
	}

	if svc.Idempotency != nil && req.IdempotencyKey != "" {
		if paymentID, err := svc.Idempotency.Get(ctx, req.IdempotencyKey); err != nil {
			logger.Warn("idempotency lookup failed", zap.Error(err))
		} else if paymentID != "" {
			return svc.Payments.GetByID(ctx, paymentID)
		}
	}

	// Fail fast outside the transaction so a card is never charged for a
	// payment that cannot be recorded.
	if _, _, _, err := svc.validateAllocation(ctx, req); err != nil {
		return nil, err
	}

	reference := req.Reference
	if req.Method == models.PaymentMethodCard && reference == "" && svc.Gateway != nil {
		captured, err := svc.Gateway.Capture(ctx, req.Amount, "payment for invoice "+req.InvoiceID)
		if err != nil {
			return nil, err
		}
		reference = captured
	}

	var payment *models.Payment
	err := svc.runTxn(ctx, func(sc context.Context) error {
		// Everything below re-reads under the transaction: the preflight
		// answers may be stale by now.
		invoice, bk, outstanding, err := svc.validateAllocation(sc, req)
		if err != nil {
			return err
		}

		payment = &models.Payment{
			ID:         uuid.New().String(),
			InvoiceID:  invoice.ID,
			BookingID:  invoice.BookingID,
			Amount:     req.Amount,
			Method:     req.Method,
			Reference:  reference,
			RecordedBy: req.RecordedBy,
			PaidAt:     time.Now().UTC(),
		}
		if err := svc.Payments.Insert(sc, payment); err != nil {
			return err
		}

		liveTotal := outstanding.liveTotal
		updatedPaid := outstanding.paidSoFar + req.Amount
		if updatedPaid+paidEpsilon >= liveTotal && bk.Status == models.BookingStatusConfirmed {
			bk.Status = models.BookingStatusCompleted
			bk.UpdatedAt = time.Now().UTC()
			if err := svc.Bookings.Update(sc, bk); err != nil {
				return err
			}
		}

		invoice.AmountPaid += req.Amount
		if invoice.AmountPaid > invoice.TotalAmount {
			invoice.AmountPaid = invoice.TotalAmount
		}
		invoice.Status = models.InvoiceStatusFor(invoice.AmountPaid, invoice.TotalAmount)
		invoice.UpdatedAt = time.Now().UTC()
		return svc.Invoices.Update(sc, invoice)
	})
	if err != nil {
		if reference != "" && reference != req.Reference {
			// The card was charged but nothing was recorded; surface the
			// reference so the charge can be reconciled or refunded.
			logger.Error("captured payment could not be recorded",
				zap.String("invoice", req.InvoiceID),
				zap.String("reference", reference),
				zap.Error(err))
		}
		return nil, err
	}

	if svc.Idempotency != nil && req.IdempotencyKey != "" {
		if err := svc.Idempotency.Set(ctx, req.IdempotencyKey, payment.ID); err != nil {
			logger.Warn("idempotency store failed", zap.Error(err))
		}
	}

	logger.Info("payment recorded",
		zap.String("payment", payment.ID),
		zap.String("invoice", payment.InvoiceID),
		zap.Float64("amount", payment.Amount))
	return payment, nil
}

// allocationState is the balance picture the overpayment check ran on.
type allocationState struct {
	liveTotal float64
	paidSoFar float64
}

// validateAllocation runs the ordered allocator checks and returns the
// invoice, its booking and the balance state. Callers inside the
// transaction get a serialized view; the preflight call uses the same
// logic for fail-fast behavior.
func (svc *DefaultBillingService) validateAllocation(ctx context.Context, req RecordPaymentRequest) (*models.Invoice, *models.Booking, allocationState, error) {
	var state allocationState

	invoice, err := svc.Invoices.GetByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, nil, state, err
	}
	if invoice.Status.Closed() {
		return nil, nil, state, utils.NewInvoiceClosed(invoice.ID)
	}

	bk, err := svc.Bookings.GetByID(ctx, invoice.BookingID)
	if err != nil {
		return nil, nil, state, err
	}
	if bk.Status == models.BookingStatusCancelled || bk.Status == models.BookingStatusCompleted {
		return nil, nil, state, utils.NewInvalidOperation(
			"cannot pay a " + bk.Status.String() + " booking")
	}

	// The booking's price is recomputed from the room's live rate; a
	// stale stored total must not decide the outstanding balance.
	room, err := svc.Rooms.GetByID(ctx, bk.RoomID)
	if err != nil {
		return nil, nil, state, err
	}
	liveTotal, err := booking.CalculateTotalPrice(bk.CheckIn, bk.CheckOut, room.PricePerNight)
	if err != nil {
		return nil, nil, state, err
	}

	paidSoFar, err := svc.Payments.SumPaidForBooking(ctx, bk.ID)
	if err != nil {
		return nil, nil, state, err
	}

	outstanding := liveTotal - paidSoFar
	if req.Amount > outstanding+OverpaymentTolerance {
		return nil, nil, state, utils.NewOverpaymentRejected(outstanding)
	}

	state.liveTotal = liveTotal
	state.paidSoFar = paidSoFar
	return invoice, bk, state, nil
}
