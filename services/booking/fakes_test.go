package booking

import (
	"context"
	"time"

	"hotelier/models"
	"hotelier/utils"
)

// In-memory repositories backing the service tests. The booking fake
// enforces the same availability gate as the Mongo implementation so the
// double-booking paths are exercised end to end.

type fakeRoomRepo struct {
	rooms map[string]*models.Room
}

func newFakeRoomRepo(rooms ...*models.Room) *fakeRoomRepo {
	repo := &fakeRoomRepo{rooms: make(map[string]*models.Room)}
	for _, r := range rooms {
		repo.rooms[r.ID] = r
	}
	return repo
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, utils.NewNotFound("room", id)
	}
	cp := *room
	return &cp, nil
}

func (f *fakeRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	out := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Insert(ctx context.Context, room *models.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, room *models.Room) error {
	if _, ok := f.rooms[room.ID]; !ok {
		return utils.NewNotFound("room", room.ID)
	}
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id string) error {
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) TouchCalendar(ctx context.Context, id string) error {
	room, ok := f.rooms[id]
	if !ok {
		return utils.NewNotFound("room", id)
	}
	room.CalendarVersion++
	return nil
}

func (f *fakeRoomRepo) EnsureIndexes() error { return nil }

type fakeLookupRepo struct {
	ids map[string]bool
}

func newFakeLookupRepo(ids ...string) *fakeLookupRepo {
	repo := &fakeLookupRepo{ids: make(map[string]bool)}
	for _, id := range ids {
		repo.ids[id] = true
	}
	return repo
}

func (f *fakeLookupRepo) Exists(ctx context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

type fakeGuestRepo struct{ fakeLookupRepo }

func newFakeGuestRepo(ids ...string) *fakeGuestRepo {
	return &fakeGuestRepo{*newFakeLookupRepo(ids...)}
}

func (f *fakeGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	if !f.ids[id] {
		return nil, utils.NewNotFound("guest", id)
	}
	return &models.Guest{ID: id}, nil
}

type fakeStaffRepo struct{ fakeLookupRepo }

func newFakeStaffRepo(ids ...string) *fakeStaffRepo {
	return &fakeStaffRepo{*newFakeLookupRepo(ids...)}
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	if !f.ids[id] {
		return nil, utils.NewNotFound("staff", id)
	}
	return &models.Staff{ID: id}, nil
}

// fakeBookingRepo touches the room calendar on successful writes, like
// the Mongo implementation does inside its transactions.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	rooms    *fakeRoomRepo
}

func newFakeBookingRepo(rooms *fakeRoomRepo) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking), rooms: rooms}
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bk, ok := f.bookings[id]
	if !ok {
		return nil, utils.NewNotFound("booking", id)
	}
	cp := *bk
	return &cp, nil
}

func (f *fakeBookingRepo) ListByRoom(ctx context.Context, roomID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range f.bookings {
		if bk.RoomID == roomID {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	for _, bk := range f.bookings {
		if bk.RoomID != roomID || bk.ID == excludeID || !bk.Status.BlocksRoom() {
			continue
		}
		if utils.RangesOverlap(bk.CheckIn, bk.CheckOut, checkIn, checkOut) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	overlaps, _ := f.FindOverlapping(ctx, booking.RoomID, booking.CheckIn, booking.CheckOut, "")
	if overlaps {
		return utils.NewRoomUnavailable(booking.RoomID)
	}
	if f.rooms != nil {
		if err := f.rooms.TouchCalendar(ctx, booking.RoomID); err != nil {
			return err
		}
	}
	cp := *booking
	f.bookings[booking.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) UpdateIfAvailable(ctx context.Context, booking *models.Booking) error {
	overlaps, _ := f.FindOverlapping(ctx, booking.RoomID, booking.CheckIn, booking.CheckOut, booking.ID)
	if overlaps {
		return utils.NewRoomUnavailable(booking.RoomID)
	}
	if f.rooms != nil {
		if err := f.rooms.TouchCalendar(ctx, booking.RoomID); err != nil {
			return err
		}
	}
	cp := *booking
	f.bookings[booking.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return utils.NewNotFound("booking", booking.ID)
	}
	cp := *booking
	f.bookings[booking.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

type fakeInvoiceRepo struct {
	invoices map[string]*models.Invoice
}

func newFakeInvoiceRepo(invoices ...*models.Invoice) *fakeInvoiceRepo {
	repo := &fakeInvoiceRepo{invoices: make(map[string]*models.Invoice)}
	for _, inv := range invoices {
		repo.invoices[inv.ID] = inv
	}
	return repo
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, utils.NewNotFound("invoice", id)
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) Insert(ctx context.Context, invoice *models.Invoice) error {
	cp := *invoice
	f.invoices[invoice.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	if _, ok := f.invoices[invoice.ID]; !ok {
		return utils.NewNotFound("invoice", invoice.ID)
	}
	cp := *invoice
	f.invoices[invoice.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) FindOpenByBooking(ctx context.Context, bookingID string) (*models.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.BookingID == bookingID && !inv.Status.Closed() {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) FindByBooking(ctx context.Context, bookingID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range f.invoices {
		if inv.BookingID == bookingID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) FindDueBefore(ctx context.Context, t time.Time) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range f.invoices {
		if (inv.Status == models.InvoiceStatusUnpaid || inv.Status == models.InvoiceStatusPartiallyPaid) &&
			inv.DueAt.Before(t) {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) EnsureIndexes() error { return nil }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testService() (*DefaultBookingService, *fakeBookingRepo) {
	rooms := newFakeRoomRepo(&models.Room{
		ID:            "room-101",
		Number:        "101",
		Type:          "double",
		PricePerNight: 100,
		Capacity:      3,
		Status:        models.RoomStatusAvailable,
	})
	bookings := newFakeBookingRepo(rooms)
	svc := &DefaultBookingService{
		Rooms:    rooms,
		Guests:   newFakeGuestRepo("guest-1"),
		Staff:    newFakeStaffRepo("staff-1"),
		Bookings: bookings,
		Invoices: newFakeInvoiceRepo(),
	}
	return svc, bookings
}
