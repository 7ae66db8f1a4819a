package booking

import (
	"fmt"
	"time"

	"hotelier/utils"
)

// CalculateTotalPrice computes a stay's total as nights × nightly rate.
// Pure function: it is re-invoked whenever the dates or the room rate
// change, never cached across edits.
func CalculateTotalPrice(checkIn, checkOut time.Time, pricePerNight float64) (float64, error) {
	nights := utils.NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return 0, utils.NewInvalidArgument("booking must span at least one night")
	}
	if pricePerNight <= 0 {
		return 0, utils.NewInvalidArgument(fmt.Sprintf("invalid nightly rate %.2f", pricePerNight))
	}
	return float64(nights) * pricePerNight, nil
}
