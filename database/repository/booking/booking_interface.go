package bookingRepo

import (
	"context"
	"time"

	"hotelier/models"
)

// BookingRepository defines persistence operations for bookings.
//
// CreateIfAvailable and UpdateIfAvailable run the availability check and
// the write inside one transaction; checking first and writing later from
// the caller would reintroduce the double-booking race.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]models.Booking, error)
	// FindOverlapping reports whether any non-cancelled booking for the
	// room overlaps [checkIn, checkOut) under the half-open rule.
	// excludeID ignores one booking's own row during edits ("" for none).
	FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error)
	CreateIfAvailable(ctx context.Context, booking *models.Booking) error
	UpdateIfAvailable(ctx context.Context, booking *models.Booking) error
	// Update persists the booking as-is. Used for status-only changes and
	// inside the payment allocator's transaction.
	Update(ctx context.Context, booking *models.Booking) error
	EnsureIndexes() error
}
