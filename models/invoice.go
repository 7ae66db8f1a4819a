package models

import "time"

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid        InvoiceStatus = "unpaid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partiallyPaid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

func (is InvoiceStatus) String() string { return string(is) }

func (is InvoiceStatus) IsValid() bool {
	switch is {
	case InvoiceStatusUnpaid, InvoiceStatusPartiallyPaid, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	default:
		return false
	}
}

// Closed reports whether the invoice accepts no further payments.
func (is InvoiceStatus) Closed() bool {
	return is == InvoiceStatusCancelled
}

// InvoiceStatusFor derives the payment-driven status from the amounts.
// Overdue and cancelled are administrative states set outside this function.
func InvoiceStatusFor(amountPaid, totalAmount float64) InvoiceStatus {
	switch {
	case amountPaid <= 0:
		return InvoiceStatusUnpaid
	case amountPaid < totalAmount:
		return InvoiceStatusPartiallyPaid
	default:
		return InvoiceStatusPaid
	}
}

// InvoiceItemType distinguishes billable line kinds.
type InvoiceItemType string

const (
	InvoiceItemRoomCharge InvoiceItemType = "roomCharge"
	InvoiceItemService    InvoiceItemType = "service"
	InvoiceItemFee        InvoiceItemType = "fee"
	InvoiceItemDiscount   InvoiceItemType = "discount"
)

func (it InvoiceItemType) IsValid() bool {
	switch it {
	case InvoiceItemRoomCharge, InvoiceItemService, InvoiceItemFee, InvoiceItemDiscount:
		return true
	default:
		return false
	}
}

// InvoiceItem is a single billable line owned by its invoice.
type InvoiceItem struct {
	ID          string          `bson:"id" json:"id"`
	Description string          `bson:"description" json:"description"`
	Quantity    float64         `bson:"quantity" json:"quantity"`
	UnitPrice   float64         `bson:"unit_price" json:"unit_price"`
	LineTotal   float64         `bson:"line_total" json:"line_total"` // Always Quantity × UnitPrice
	Type        InvoiceItemType `bson:"type" json:"type"`
}

// Invoice is the billing record for one booking. AmountPaid never exceeds
// TotalAmount; TotalAmount is always the sum of the items' line totals.
type Invoice struct {
	ID          string        `bson:"id" json:"id"`
	BookingID   string        `bson:"booking_id" json:"booking_id"`
	GuestID     string        `bson:"guest_id" json:"guest_id"`
	Items       []InvoiceItem `bson:"items" json:"items"`
	TotalAmount float64       `bson:"total_amount" json:"total_amount"`
	AmountPaid  float64       `bson:"amount_paid" json:"amount_paid"`
	Status      InvoiceStatus `bson:"status" json:"status"`
	GeneratedBy string        `bson:"generated_by,omitempty" json:"generated_by,omitempty"` // Staff ID
	IssuedAt    time.Time     `bson:"issued_at" json:"issued_at"`
	DueAt       time.Time     `bson:"due_at" json:"due_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// Outstanding returns the unpaid remainder of the invoice.
func (inv *Invoice) Outstanding() float64 {
	out := inv.TotalAmount - inv.AmountPaid
	if out < 0 {
		return 0
	}
	return out
}

// RecomputeTotal re-sums the items' line totals into TotalAmount.
func (inv *Invoice) RecomputeTotal() {
	total := 0.0
	for i := range inv.Items {
		inv.Items[i].LineTotal = inv.Items[i].Quantity * inv.Items[i].UnitPrice
		total += inv.Items[i].LineTotal
	}
	inv.TotalAmount = total
}
