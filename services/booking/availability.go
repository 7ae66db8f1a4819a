package booking

import (
	"context"
	"fmt"
	"time"

	"hotelier/utils"

	"go.uber.org/zap"
)

// availabilityProbeTTL bounds how long a cached probe answer may lag
// behind the bookings collection.
const availabilityProbeTTL = 5 * time.Second

// IsAvailable reports whether the room is free for the half-open range
// [checkIn, checkOut), ignoring excludeBookingID's own row during edits.
func (svc *DefaultBookingService) IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error) {
	checkIn = utils.DateOnly(checkIn)
	checkOut = utils.DateOnly(checkOut)
	if !checkOut.After(checkIn) {
		return false, utils.NewInvalidArgument("check-out must be after check-in")
	}

	overlaps, err := svc.Bookings.FindOverlapping(ctx, roomID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}
	return !overlaps, nil
}

// ProbeAvailability answers the read-only availability endpoint, caching
// results briefly. Never used on the create/update path: those re-check
// inside the booking transaction.
func (svc *DefaultBookingService) ProbeAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	checkIn = utils.DateOnly(checkIn)
	checkOut = utils.DateOnly(checkOut)

	key := fmt.Sprintf("avail:%s:%s:%s", roomID, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
	if svc.Cache != nil {
		if cached, err := svc.Cache.Get(ctx, key).Result(); err == nil {
			return cached == "1", nil
		}
	}

	available, err := svc.IsAvailable(ctx, roomID, checkIn, checkOut, "")
	if err != nil {
		return false, err
	}

	if svc.Cache != nil {
		val := "0"
		if available {
			val = "1"
		}
		if err := svc.Cache.Set(ctx, key, val, availabilityProbeTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache availability probe",
				zap.String("room", roomID), zap.Error(err))
		}
	}
	return available, nil
}
