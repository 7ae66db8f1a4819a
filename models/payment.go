package models

import "time"

// PaymentMethod is the closed set of accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bankTransfer"
	PaymentMethodMobileMoney  PaymentMethod = "mobileMoney"
)

func (pm PaymentMethod) String() string { return string(pm) }

func (pm PaymentMethod) IsValid() bool {
	switch pm {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodMobileMoney:
		return true
	default:
		return false
	}
}

// Payment is one recorded transaction against an invoice. Payments are
// immutable once written.
type Payment struct {
	ID         string        `bson:"id" json:"id"`
	InvoiceID  string        `bson:"invoice_id" json:"invoice_id"`
	BookingID  string        `bson:"booking_id" json:"booking_id"` // Denormalized from the invoice for aggregate queries
	Amount     float64       `bson:"amount" json:"amount"`
	Method     PaymentMethod `bson:"method" json:"method"`
	Reference  string        `bson:"reference,omitempty" json:"reference,omitempty"`      // Gateway or bank reference, unique when set
	RecordedBy string        `bson:"recorded_by,omitempty" json:"recorded_by,omitempty"` // Staff ID
	PaidAt     time.Time     `bson:"paid_at" json:"paid_at"`
}
