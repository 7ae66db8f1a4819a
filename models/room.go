package models

import "time"

// RoomStatus is the operational status of a room.
type RoomStatus string

const (
	RoomStatusAvailable    RoomStatus = "available"
	RoomStatusMaintenance  RoomStatus = "maintenance"
	RoomStatusOutOfService RoomStatus = "outOfService"
)

func (rs RoomStatus) String() string { return string(rs) }

func (rs RoomStatus) IsValid() bool {
	switch rs {
	case RoomStatusAvailable, RoomStatusMaintenance, RoomStatusOutOfService:
		return true
	default:
		return false
	}
}

// Bookable reports whether new reservations may be taken for the room.
func (rs RoomStatus) Bookable() bool {
	return rs == RoomStatusAvailable || rs == RoomStatusMaintenance
}

// Room represents a bookable hotel room.
type Room struct {
	ID            string     `bson:"id" json:"id"`
	Number        string     `bson:"number" json:"number"`                   // Door number, e.g. "101"
	Type          string     `bson:"type" json:"type"`                       // e.g. "single", "double", "suite"
	PricePerNight float64    `bson:"price_per_night" json:"price_per_night"` // Nightly rate in the configured currency
	Capacity      int        `bson:"capacity" json:"capacity"`               // Maximum guests, adults plus children
	Status        RoomStatus `bson:"status" json:"status"`
	// CalendarVersion is bumped inside every booking transaction for this
	// room so that concurrent writers to the same calendar conflict.
	CalendarVersion int64     `bson:"calendar_version" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
