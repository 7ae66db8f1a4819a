package invoiceRepo

import (
	"context"
	"time"

	"hotelier/models"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	Insert(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, invoice *models.Invoice) error
	// FindOpenByBooking returns the booking's non-cancelled invoice, or
	// nil when none exists. A booking carries at most one open invoice.
	FindOpenByBooking(ctx context.Context, bookingID string) (*models.Invoice, error)
	FindByBooking(ctx context.Context, bookingID string) ([]models.Invoice, error)
	// FindDueBefore returns unpaid or partially paid invoices whose due
	// date precedes t. Used by the overdue sweep.
	FindDueBefore(ctx context.Context, t time.Time) ([]models.Invoice, error)
	EnsureIndexes() error
}
