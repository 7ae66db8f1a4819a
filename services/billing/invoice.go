package billing

import (
	"context"
	"fmt"
	"time"

	"hotelier/models"
	"hotelier/services/booking"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultDueDays = 14

// GenerateInvoice creates the billing record for a booking. With no items
// supplied, a single room-charge line is derived from the room's live
// rate. A booking carries at most one open invoice.
func (svc *DefaultBillingService) GenerateInvoice(ctx context.Context, bookingID string, items []InvoiceItemInput, generatedBy string) (*models.Invoice, error) {
	bk, err := svc.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if bk.Status == models.BookingStatusCancelled {
		return nil, utils.NewInvalidOperation("cannot invoice a cancelled booking")
	}

	if generatedBy != "" {
		if exists, err := svc.Staff.Exists(ctx, generatedBy); err != nil {
			return nil, err
		} else if !exists {
			return nil, utils.NewNotFound("staff", generatedBy)
		}
	}

	if existing, err := svc.Invoices.FindOpenByBooking(ctx, bookingID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, utils.NewConflict("booking " + bookingID + " already has open invoice " + existing.ID)
	}

	invoiceItems, err := svc.buildItems(ctx, bk, items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dueDays := svc.DueDays
	if dueDays <= 0 {
		dueDays = defaultDueDays
	}
	invoice := &models.Invoice{
		ID:          uuid.New().String(),
		BookingID:   bk.ID,
		GuestID:     bk.GuestID,
		Items:       invoiceItems,
		Status:      models.InvoiceStatusUnpaid,
		GeneratedBy: generatedBy,
		IssuedAt:    now,
		DueAt:       now.AddDate(0, 0, dueDays),
		UpdatedAt:   now,
	}
	invoice.RecomputeTotal()

	if err := svc.Invoices.Insert(ctx, invoice); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("invoice generated",
		zap.String("invoice", invoice.ID),
		zap.String("booking", bk.ID),
		zap.Float64("total", invoice.TotalAmount))
	return invoice, nil
}

func (svc *DefaultBillingService) buildItems(ctx context.Context, bk *models.Booking, items []InvoiceItemInput) ([]models.InvoiceItem, error) {
	if len(items) == 0 {
		room, err := svc.Rooms.GetByID(ctx, bk.RoomID)
		if err != nil {
			return nil, err
		}
		nights := utils.NightsBetween(bk.CheckIn, bk.CheckOut)
		if _, err := booking.CalculateTotalPrice(bk.CheckIn, bk.CheckOut, room.PricePerNight); err != nil {
			return nil, err
		}
		return []models.InvoiceItem{{
			ID:          uuid.New().String(),
			Description: fmt.Sprintf("Room %s, %d night(s)", room.Number, nights),
			Quantity:    float64(nights),
			UnitPrice:   room.PricePerNight,
			Type:        models.InvoiceItemRoomCharge,
		}}, nil
	}

	out := make([]models.InvoiceItem, 0, len(items))
	for i, in := range items {
		if in.Description == "" {
			return nil, utils.NewInvalidArgument(fmt.Sprintf("item %d: missing description", i))
		}
		if in.Quantity < 0 {
			return nil, utils.NewInvalidArgument(fmt.Sprintf("item %d: negative quantity", i))
		}
		if in.UnitPrice < 0 {
			return nil, utils.NewInvalidArgument(fmt.Sprintf("item %d: negative unit price", i))
		}
		if !in.Type.IsValid() {
			return nil, utils.NewInvalidArgument(fmt.Sprintf("item %d: unknown type %q", i, in.Type))
		}
		out = append(out, models.InvoiceItem{
			ID:          uuid.New().String(),
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Type:        in.Type,
		})
	}
	return out, nil
}

func (svc *DefaultBillingService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	return svc.Invoices.GetByID(ctx, id)
}

func (svc *DefaultBillingService) GetOutstandingBalance(ctx context.Context, invoiceID string) (float64, error) {
	invoice, err := svc.Invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return 0, err
	}
	return invoice.Outstanding(), nil
}

// CancelInvoice closes an invoice administratively. Once any payment has
// been recorded the invoice can no longer be cancelled.
func (svc *DefaultBillingService) CancelInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := svc.Invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == models.InvoiceStatusCancelled {
		return invoice, nil
	}
	if invoice.AmountPaid > 0 {
		return nil, utils.NewInvalidOperation("cannot cancel an invoice with recorded payments")
	}

	invoice.Status = models.InvoiceStatusCancelled
	invoice.UpdatedAt = time.Now().UTC()
	if err := svc.Invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("invoice cancelled", zap.String("invoice", invoice.ID))
	return invoice, nil
}

// MarkInvoiceOverdue flags an open invoice past its payment terms.
func (svc *DefaultBillingService) MarkInvoiceOverdue(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := svc.Invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch invoice.Status {
	case models.InvoiceStatusUnpaid, models.InvoiceStatusPartiallyPaid:
	case models.InvoiceStatusOverdue:
		return invoice, nil
	default:
		return nil, utils.NewInvalidTransition("cannot mark a " + invoice.Status.String() + " invoice overdue")
	}

	invoice.Status = models.InvoiceStatusOverdue
	invoice.UpdatedAt = time.Now().UTC()
	if err := svc.Invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("invoice marked overdue", zap.String("invoice", invoice.ID))
	return invoice, nil
}

// SweepOverdue is the background task body: it finds open invoices past
// their due date and marks them overdue.
func (svc *DefaultBillingService) SweepOverdue(ctx context.Context) (int, error) {
	due, err := svc.Invoices.FindDueBefore(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	marked := 0
	for i := range due {
		invoice := due[i]
		invoice.Status = models.InvoiceStatusOverdue
		invoice.UpdatedAt = time.Now().UTC()
		if err := svc.Invoices.Update(ctx, &invoice); err != nil {
			utils.GetLogger().Error("overdue sweep: failed to update invoice",
				zap.String("invoice", invoice.ID), zap.Error(err))
			continue
		}
		marked++
	}
	if marked > 0 {
		utils.GetLogger().Info("overdue sweep finished", zap.Int("marked", marked))
	}
	return marked, nil
}

func (svc *DefaultBillingService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	return svc.Payments.GetByID(ctx, id)
}

func (svc *DefaultBillingService) ListPayments(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	if _, err := svc.Invoices.GetByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return svc.Payments.ListByInvoice(ctx, invoiceID)
}
