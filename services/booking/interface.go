package booking

import (
	"context"
	"time"

	bookingRepo "hotelier/database/repository/booking"
	guestRepo "hotelier/database/repository/guest"
	invoiceRepo "hotelier/database/repository/invoice"
	roomRepo "hotelier/database/repository/room"
	staffRepo "hotelier/database/repository/staff"
	"hotelier/models"

	"github.com/go-redis/redis/v8"
)

// CreateBookingRequest carries the caller-supplied fields for a new or
// edited booking. Prices and statuses are never accepted from callers.
type CreateBookingRequest struct {
	RoomID   string
	GuestID  string
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	BookedBy string // Staff ID, optional
}

// BookingService owns the booking lifecycle: availability-gated creation
// and edits, the status state machine, and pricing.
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)
	// IsAvailable reports whether the room is free for [checkIn, checkOut),
	// optionally ignoring one booking's own row ("" for none).
	IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error)
	// ProbeAvailability is the read-only, briefly cached variant backing
	// the availability endpoint.
	ProbeAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Rooms    roomRepo.RoomRepository
	Guests   guestRepo.GuestRepository
	Staff    staffRepo.StaffRepository
	Bookings bookingRepo.BookingRepository
	// Invoices is consulted on cancellation to close the booking's open,
	// unpaid invoice alongside it.
	Invoices invoiceRepo.InvoiceRepository
	// Cache, when set, memoizes read-only availability probes for a few
	// seconds. The authoritative check always runs inside the booking
	// transaction.
	Cache *redis.Client
}
