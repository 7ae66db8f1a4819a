package models

import "time"

// Guest is the customer a booking is made for. The core only reads guests;
// their CRUD lifecycle lives outside this service.
type Guest struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
