package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, time.March, 10, 17, 45, 30, 999, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), DateOnly(in))
}

func TestNightsBetween(t *testing.T) {
	mar10 := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, NightsBetween(mar10, mar10.AddDate(0, 0, 2)))
	assert.Equal(t, 1, NightsBetween(mar10, mar10.AddDate(0, 0, 1)))
	assert.Equal(t, 0, NightsBetween(mar10, mar10))
}

func TestRangesOverlap(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	// Half-open ranges: the end day itself does not occupy the room.
	assert.True(t, RangesOverlap(day(10), day(15), day(14), day(18)))
	assert.True(t, RangesOverlap(day(10), day(15), day(11), day(13)))
	assert.False(t, RangesOverlap(day(10), day(15), day(15), day(18)))
	assert.False(t, RangesOverlap(day(10), day(15), day(7), day(10)))
	assert.False(t, RangesOverlap(day(10), day(15), day(1), day(5)))
}
