package booking

import (
	"context"
	"fmt"
	"time"

	"hotelier/models"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (svc *DefaultBookingService) validateRequest(ctx context.Context, req *CreateBookingRequest) (*models.Room, error) {
	if req.RoomID == "" {
		return nil, utils.NewInvalidArgument("missing room id")
	}
	if req.GuestID == "" {
		return nil, utils.NewInvalidArgument("missing guest id")
	}
	if req.Adults < 0 || req.Children < 0 {
		return nil, utils.NewInvalidArgument("guest counts cannot be negative")
	}
	if req.Adults < 1 && req.Children < 1 {
		return nil, utils.NewInvalidArgument("booking needs at least one guest")
	}

	req.CheckIn = utils.DateOnly(req.CheckIn)
	req.CheckOut = utils.DateOnly(req.CheckOut)

	room, err := svc.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Status.Bookable() {
		return nil, utils.NewInvalidOperation("room " + room.ID + " is out of service")
	}
	if room.Capacity > 0 && req.Adults+req.Children > room.Capacity {
		return nil, utils.NewInvalidArgument(
			fmt.Sprintf("room %s sleeps at most %d guests", room.ID, room.Capacity))
	}

	if exists, err := svc.Guests.Exists(ctx, req.GuestID); err != nil {
		return nil, err
	} else if !exists {
		return nil, utils.NewNotFound("guest", req.GuestID)
	}
	if req.BookedBy != "" {
		if exists, err := svc.Staff.Exists(ctx, req.BookedBy); err != nil {
			return nil, err
		} else if !exists {
			return nil, utils.NewNotFound("staff", req.BookedBy)
		}
	}
	return room, nil
}

// CreateBooking validates the request, prices the stay from the room's
// live rate and inserts the booking behind the availability check.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	room, err := svc.validateRequest(ctx, &req)
	if err != nil {
		return nil, err
	}

	total, err := CalculateTotalPrice(req.CheckIn, req.CheckOut, room.PricePerNight)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		RoomID:     req.RoomID,
		GuestID:    req.GuestID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Adults:     req.Adults,
		Children:   req.Children,
		TotalPrice: total,
		Status:     models.BookingStatusPending,
		BookedBy:   req.BookedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := svc.Bookings.CreateIfAvailable(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("booking", booking.ID),
		zap.String("room", booking.RoomID),
		zap.Float64("total", booking.TotalPrice))
	return booking, nil
}

// UpdateBooking re-validates and re-prices an existing booking, ignoring
// its own row in the overlap scan.
func (svc *DefaultBookingService) UpdateBooking(ctx context.Context, id string, req CreateBookingRequest) (*models.Booking, error) {
	booking, err := svc.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, utils.NewInvalidTransition("cannot edit a " + booking.Status.String() + " booking")
	}

	room, err := svc.validateRequest(ctx, &req)
	if err != nil {
		return nil, err
	}

	total, err := CalculateTotalPrice(req.CheckIn, req.CheckOut, room.PricePerNight)
	if err != nil {
		return nil, err
	}

	booking.RoomID = req.RoomID
	booking.GuestID = req.GuestID
	booking.CheckIn = req.CheckIn
	booking.CheckOut = req.CheckOut
	booking.Adults = req.Adults
	booking.Children = req.Children
	booking.TotalPrice = total
	booking.BookedBy = req.BookedBy
	booking.UpdatedAt = time.Now().UTC()

	if err := svc.Bookings.UpdateIfAvailable(ctx, booking); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking updated",
		zap.String("booking", booking.ID),
		zap.Float64("total", booking.TotalPrice))
	return booking, nil
}

func (svc *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return svc.Bookings.GetByID(ctx, id)
}
