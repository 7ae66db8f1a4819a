package billing

import (
	"context"

	"hotelier/database"
	bookingRepo "hotelier/database/repository/booking"
	invoiceRepo "hotelier/database/repository/invoice"
	paymentRepo "hotelier/database/repository/payment"
	roomRepo "hotelier/database/repository/room"
	staffRepo "hotelier/database/repository/staff"
	"hotelier/models"
)

// InvoiceItemInput is a caller-supplied billable line. Line totals are
// recomputed server-side, never trusted from the caller.
type InvoiceItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Type        models.InvoiceItemType
}

// RecordPaymentRequest carries one payment to allocate against an invoice.
type RecordPaymentRequest struct {
	InvoiceID      string
	Amount         float64
	Method         models.PaymentMethod
	Reference      string // Pre-existing gateway/bank reference, optional
	RecordedBy     string // Staff ID, optional
	IdempotencyKey string // Optional; replays return the original payment
}

// BillingService owns the invoice lifecycle and payment allocation.
type BillingService interface {
	GenerateInvoice(ctx context.Context, bookingID string, items []InvoiceItemInput, generatedBy string) (*models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	GetOutstandingBalance(ctx context.Context, invoiceID string) (float64, error)
	CancelInvoice(ctx context.Context, id string) (*models.Invoice, error)
	MarkInvoiceOverdue(ctx context.Context, id string) (*models.Invoice, error)
	// RecordPayment validates, captures (card) and persists a payment,
	// then cascades invoice and booking status in one atomic unit. A
	// zero-amount request against an already paid invoice is an
	// idempotent no-op returning (nil, nil).
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (*models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListPayments(ctx context.Context, invoiceID string) ([]models.Payment, error)
	// SweepOverdue marks unpaid invoices past their due date overdue and
	// returns how many it touched.
	SweepOverdue(ctx context.Context) (int, error)
}

// DefaultBillingService implements BillingService.
type DefaultBillingService struct {
	Invoices invoiceRepo.InvoiceRepository
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
	Staff    staffRepo.StaffRepository
	// Gateway captures card payments; nil disables capture (reference
	// must then be supplied by the caller).
	Gateway PaymentGateway
	// Idempotency replays payment idempotency keys; nil disables replay.
	Idempotency IdempotencyStore
	// Txn wraps the allocator's read-validate-write sequence. Defaults
	// to database.WithTransaction when unset.
	Txn database.TxnRunner
	// DueDays is the payment term applied to new invoices.
	DueDays int
}

func (svc *DefaultBillingService) runTxn(ctx context.Context, fn database.TxnFunc) error {
	if svc.Txn != nil {
		return svc.Txn(ctx, fn)
	}
	return database.WithTransaction(ctx, fn)
}
