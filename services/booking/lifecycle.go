package booking

import (
	"context"
	"time"

	"hotelier/models"
	"hotelier/utils"

	"go.uber.org/zap"
)

// ConfirmBooking moves a pending booking to confirmed.
func (svc *DefaultBookingService) ConfirmBooking(ctx context.Context, id string) (*models.Booking, error) {
	return svc.transition(ctx, id, models.BookingStatusConfirmed)
}

// CancelBooking cancels a pending or confirmed booking. The booking's
// open invoice, if it has seen no payment yet, is cancelled with it.
func (svc *DefaultBookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := svc.transition(ctx, id, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	if svc.Invoices != nil {
		invoice, err := svc.Invoices.FindOpenByBooking(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		if invoice != nil && invoice.AmountPaid == 0 {
			invoice.Status = models.InvoiceStatusCancelled
			invoice.UpdatedAt = time.Now().UTC()
			if err := svc.Invoices.Update(ctx, invoice); err != nil {
				return nil, err
			}
			utils.GetLogger().Info("invoice cancelled with booking",
				zap.String("invoice", invoice.ID),
				zap.String("booking", booking.ID))
		}
	}
	return booking, nil
}

func (svc *DefaultBookingService) transition(ctx context.Context, id string, next models.BookingStatus) (*models.Booking, error) {
	booking, err := svc.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(next) {
		return nil, utils.NewInvalidTransition(
			"booking cannot go from " + booking.Status.String() + " to " + next.String())
	}

	booking.Status = next
	booking.UpdatedAt = time.Now().UTC()
	if err := svc.Bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("booking", booking.ID),
		zap.String("status", next.String()))
	return booking, nil
}
