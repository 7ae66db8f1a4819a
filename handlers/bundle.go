package handlers

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Rooms    *RoomHandler
	Bookings *BookingHandler
	Invoices *InvoiceHandler
	Payments *PaymentHandler
}
