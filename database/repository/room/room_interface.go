package roomRepo

import (
	"context"

	"hotelier/models"
)

// RoomRepository defines persistence operations for rooms. The booking
// core only reads rooms; the CRUD surface exists for the management API.
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	Insert(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
	// TouchCalendar bumps the room's calendar version inside a booking
	// transaction so concurrent bookers of the same room conflict.
	TouchCalendar(ctx context.Context, id string) error
	EnsureIndexes() error
}
