package booking

import (
	"context"
	"testing"
	"time"

	"hotelier/models"
	"hotelier/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmBooking(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	bk, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	confirmed, err := svc.ConfirmBooking(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)
}

func TestConfirmBookingTwice(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	bk, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(ctx, bk.ID)
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(ctx, bk.ID)
	require.Error(t, err)
	assert.Equal(t, utils.CodeInvalidTransition, utils.CodeOf(err))
}

func TestCancelBookingFromPendingAndConfirmed(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	pending, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	cancelled, err := svc.CancelBooking(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	req := validRequest()
	req.CheckIn = date(2026, time.April, 1)
	req.CheckOut = date(2026, time.April, 3)
	confirmed, err := svc.CreateBooking(ctx, req)
	require.NoError(t, err)
	_, err = svc.ConfirmBooking(ctx, confirmed.ID)
	require.NoError(t, err)
	cancelled, err = svc.CancelBooking(ctx, confirmed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestCancelBookingTerminal(t *testing.T) {
	svc, repo := testService()
	ctx := context.Background()

	bk, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	repo.bookings[bk.ID].Status = models.BookingStatusCompleted

	_, err = svc.CancelBooking(ctx, bk.ID)
	require.Error(t, err)
	assert.Equal(t, utils.CodeInvalidTransition, utils.CodeOf(err))
}

func TestCancelBookingReleasesRoom(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	bk, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.CancelBooking(ctx, bk.ID)
	require.NoError(t, err)

	// The slot is free again for another guest.
	_, err = svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
}

func TestCancelBookingCancelsUnpaidInvoice(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	bk, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	invoices := newFakeInvoiceRepo(&models.Invoice{
		ID:          "inv-1",
		BookingID:   bk.ID,
		TotalAmount: 200,
		Status:      models.InvoiceStatusUnpaid,
	})
	svc.Invoices = invoices

	_, err = svc.CancelBooking(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusCancelled, invoices.invoices["inv-1"].Status)
}

func TestCancelBookingKeepsPaidInvoice(t *testing.T) {
	svc, _ := testService()
	ctx := context.Background()

	bk, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	invoices := newFakeInvoiceRepo(&models.Invoice{
		ID:          "inv-1",
		BookingID:   bk.ID,
		TotalAmount: 200,
		AmountPaid:  50,
		Status:      models.InvoiceStatusPartiallyPaid,
	})
	svc.Invoices = invoices

	_, err = svc.CancelBooking(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPartiallyPaid, invoices.invoices["inv-1"].Status,
		"an invoice with payments stays open for reconciliation")
}

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		ok       bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusConfirmed, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
