package utils

import "time"

// DateOnly truncates a timestamp to UTC midnight. Booking ranges compare
// on whole days; the time component is ignored everywhere.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NightsBetween returns the number of nights in [checkIn, checkOut).
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// RangesOverlap applies the half-open interval rule: [a,b) and [c,d)
// overlap iff a < d && c < b, so a checkout and a same-day check-in do
// not conflict.
func RangesOverlap(aStart, aEnd, cStart, cEnd time.Time) bool {
	return aStart.Before(cEnd) && cStart.Before(aEnd)
}
