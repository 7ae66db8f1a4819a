package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (bs BookingStatus) String() string { return string(bs) }

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the booking can no longer change state.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusCompleted || bs == BookingStatusCancelled
}

// CanTransitionTo encodes the booking state machine:
// pending → confirmed → completed, and pending/confirmed → cancelled.
func (bs BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case BookingStatusConfirmed:
		return bs == BookingStatusPending
	case BookingStatusCompleted:
		return bs == BookingStatusConfirmed
	case BookingStatusCancelled:
		return bs == BookingStatusPending || bs == BookingStatusConfirmed
	default:
		return false
	}
}

// BlocksRoom reports whether a booking in this status still occupies the
// room's calendar for overlap checks.
func (bs BookingStatus) BlocksRoom() bool {
	return bs != BookingStatusCancelled
}

// Booking represents a reservation of one room for one guest over a
// half-open date range [CheckIn, CheckOut).
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	RoomID     string        `bson:"room_id" json:"room_id"`
	GuestID    string        `bson:"guest_id" json:"guest_id"`
	CheckIn    time.Time     `bson:"check_in" json:"check_in"`   // UTC midnight; the time component is ignored
	CheckOut   time.Time     `bson:"check_out" json:"check_out"` // UTC midnight; checkout day itself is free
	Adults     int           `bson:"adults" json:"adults"`
	Children   int           `bson:"children" json:"children"`
	TotalPrice float64       `bson:"total_price" json:"total_price"` // Nights × nightly rate at last write
	Status     BookingStatus `bson:"status" json:"status"`
	BookedBy   string        `bson:"booked_by,omitempty" json:"booked_by,omitempty"` // Staff ID, empty for self-service
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updated_at"`
}
