package models

import "time"

// Staff is a hotel employee who may record bookings, invoices and payments.
type Staff struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Role      string    `bson:"role" json:"role"` // e.g. "receptionist", "manager"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
