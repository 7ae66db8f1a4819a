package billing

import (
	"context"
	"fmt"
	"time"

	"hotelier/database"
	"hotelier/models"
	"hotelier/utils"
)

// In-memory repositories for the billing tests. The transaction runner is
// a pass-through; serialization is the database's job, the service only
// supplies the read-validate-write body.

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

type fakePaymentRepo struct {
	payments map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, utils.NewNotFound("payment", id)
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) Insert(ctx context.Context, payment *models.Payment) error {
	cp := *payment
	f.payments[payment.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) SumPaidForBooking(ctx context.Context, bookingID string) (float64, error) {
	total := 0.0
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			total += p.Amount
		}
	}
	return total, nil
}

func (f *fakePaymentRepo) EnsureIndexes() error { return nil }

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, bk := range bookings {
		repo.bookings[bk.ID] = bk
	}
	return repo
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
	return nil, nil
}

func (f *fakeBookingRepo) FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	cp := *booking
	f.bookings[booking.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) UpdateIfAvailable(ctx context.Context, booking *models.Booking) error {
	return f.Update(ctx, booking)
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

func (f *fakeRoomRepo) List(ctx context.Context) ([]models.Room, error) { return nil, nil }

func (f *fakeRoomRepo) Insert(ctx context.Context, room *models.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, room *models.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeRoomRepo) TouchCalendar(ctx context.Context, id string) error { return nil }

func (f *fakeRoomRepo) EnsureIndexes() error { return nil }

type fakeStaffRepo struct {
	ids map[string]bool
}

func newFakeStaffRepo(ids ...string) *fakeStaffRepo {
	repo := &fakeStaffRepo{ids: make(map[string]bool)}
	for _, id := range ids {
		repo.ids[id] = true
	}
	return repo
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	if !f.ids[id] {
		return nil, utils.NewNotFound("staff", id)
	}
	return &models.Staff{ID: id}, nil
}

func (f *fakeStaffRepo) Exists(ctx context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

type fakeGateway struct {
	captures []float64
	fail     error
}

func (g *fakeGateway) Capture(ctx context.Context, amount float64, description string) (string, error) {
	if g.fail != nil {
		return "", g.fail
	}
	g.captures = append(g.captures, amount)
	return fmt.Sprintf("pi_test_%d", len(g.captures)), nil
}

type fakeIdempotencyStore struct {
	keys map[string]string
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{keys: make(map[string]string)}
}

func (s *fakeIdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	return s.keys[key], nil
}

func (s *fakeIdempotencyStore) Set(ctx context.Context, key, paymentID string) error {
	s.keys[key] = paymentID
	return nil
}

func passthroughTxn(ctx context.Context, fn database.TxnFunc) error {
	return fn(ctx)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// billingFixture wires a service around one confirmed two-night booking
// at $100 per night.
type billingFixture struct {
	svc      *DefaultBillingService
	invoices *fakeInvoiceRepo
	payments *fakePaymentRepo
	bookings *fakeBookingRepo
	rooms    *fakeRoomRepo
}

func newBillingFixture() *billingFixture {
	rooms := newFakeRoomRepo(&models.Room{
		ID:            "room-101",
		Number:        "101",
		PricePerNight: 100,
		Status:        models.RoomStatusAvailable,
	})
	bookings := newFakeBookingRepo(&models.Booking{
		ID:         "bk-1",
		RoomID:     "room-101",
		GuestID:    "guest-1",
		CheckIn:    date(2026, time.March, 10),
		CheckOut:   date(2026, time.March, 12),
		Adults:     2,
		TotalPrice: 200,
		Status:     models.BookingStatusConfirmed,
	})
	invoices := newFakeInvoiceRepo()
	payments := newFakePaymentRepo()

	svc := &DefaultBillingService{
		Invoices: invoices,
		Payments: payments,
		Bookings: bookings,
		Rooms:    rooms,
		Staff:    newFakeStaffRepo("staff-1"),
		Txn:      passthroughTxn,
	}
	return &billingFixture{
		svc:      svc,
		invoices: invoices,
		payments: payments,
		bookings: bookings,
		rooms:    rooms,
	}
}

// invoice issues the fixture booking's invoice, totalling $200.
func (fx *billingFixture) invoice(ctx context.Context) *models.Invoice {
	inv, err := fx.svc.GenerateInvoice(ctx, "bk-1", nil, "")
	if err != nil {
		panic(err)
	}
	return inv
}
