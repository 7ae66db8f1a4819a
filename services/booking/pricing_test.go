package booking

import (
	"testing"
	"time"

	"hotelier/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotalPrice(t *testing.T) {
	checkIn := date(2026, time.March, 10)
	checkOut := date(2026, time.March, 12)

	total, err := CalculateTotalPrice(checkIn, checkOut, 100)
	require.NoError(t, err)
	assert.Equal(t, 200.0, total, "two nights at $100")

	// Same inputs, same answer.
	again, err := CalculateTotalPrice(checkIn, checkOut, 100)
	require.NoError(t, err)
	assert.Equal(t, total, again)
}

func TestCalculateTotalPriceSingleNight(t *testing.T) {
	total, err := CalculateTotalPrice(date(2026, time.July, 1), date(2026, time.July, 2), 85.5)
	require.NoError(t, err)
	assert.Equal(t, 85.5, total)
}

func TestCalculateTotalPriceRejectsEmptyStay(t *testing.T) {
	day := date(2026, time.March, 10)

	_, err := CalculateTotalPrice(day, day, 100)
	require.Error(t, err)
	assert.Equal(t, utils.CodeInvalidArgument, utils.CodeOf(err))

	_, err = CalculateTotalPrice(day, day.AddDate(0, 0, -1), 100)
	require.Error(t, err)
	assert.Equal(t, utils.CodeInvalidArgument, utils.CodeOf(err))
}

func TestCalculateTotalPriceRejectsBadRate(t *testing.T) {
	checkIn := date(2026, time.March, 10)
	checkOut := date(2026, time.March, 12)

	for _, rate := range []float64{0, -50} {
		_, err := CalculateTotalPrice(checkIn, checkOut, rate)
		require.Error(t, err)
		assert.Equal(t, utils.CodeInvalidArgument, utils.CodeOf(err))
	}
}
