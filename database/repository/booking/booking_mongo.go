package bookingRepo

import (
	"context"
	"errors"
	"time"

	"hotelier/database"
	roomRepo "hotelier/database/repository/room"
	"hotelier/models"
	"hotelier/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It holds
// the room repository as well: booking transactions touch the room
// document so concurrent bookers of the same room hit a write conflict.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	rooms       roomRepo.RoomRepository
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo(rooms roomRepo.RoomRepository) BookingRepository {
	return &MongoBookingRepo{
		bookingColl: database.DB().Collection("bookings"),
		rooms:       rooms,
	}
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("booking", id)
		}
		return nil, utils.NewPersistence("fetch booking", err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) ListByRoom(ctx context.Context, roomID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.bookingColl.Find(ctx, bson.M{"room_id": roomID})
	if err != nil {
		return nil, utils.NewPersistence("list bookings", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, utils.NewPersistence("decode bookings", err)
	}
	return bookings, nil
}

// overlapFilter matches non-cancelled bookings for the room whose
// [check_in, check_out) range overlaps the requested one: a < d && c < b.
func overlapFilter(roomID string, checkIn, checkOut time.Time, excludeID string) bson.M {
	filter := bson.M{
		"room_id":   roomID,
		"status":    bson.M{"$ne": models.BookingStatusCancelled},
		"check_in":  bson.M{"$lt": checkOut},
		"check_out": bson.M{"$gt": checkIn},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func (repo *MongoBookingRepo) FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.bookingColl.CountDocuments(ctx, overlapFilter(roomID, checkIn, checkOut, excludeID))
	if err != nil {
		return false, utils.NewPersistence("count overlapping bookings", err)
	}
	return count > 0, nil
}

func (repo *MongoBookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	err := database.WithTransaction(ctx, func(sc context.Context) error {
		// Touching the room document makes two transactions booking the
		// same room write-conflict; the second aborts instead of
		// committing a double booking.
		if err := repo.rooms.TouchCalendar(sc, booking.RoomID); err != nil {
			return err
		}
		count, err := repo.bookingColl.CountDocuments(sc, overlapFilter(booking.RoomID, booking.CheckIn, booking.CheckOut, ""))
		if err != nil {
			return utils.NewPersistence("count overlapping bookings", err)
		}
		if count > 0 {
			return utils.NewRoomUnavailable(booking.RoomID)
		}
		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return utils.NewPersistence("insert booking", err)
		}
		return nil
	})
	if err != nil && database.IsTransient(err) {
		return utils.NewConflict("concurrent booking write detected, please retry")
	}
	return err
}

func (repo *MongoBookingRepo) UpdateIfAvailable(ctx context.Context, booking *models.Booking) error {
	err := database.WithTransaction(ctx, func(sc context.Context) error {
		if err := repo.rooms.TouchCalendar(sc, booking.RoomID); err != nil {
			return err
		}
		count, err := repo.bookingColl.CountDocuments(sc, overlapFilter(booking.RoomID, booking.CheckIn, booking.CheckOut, booking.ID))
		if err != nil {
			return utils.NewPersistence("count overlapping bookings", err)
		}
		if count > 0 {
			return utils.NewRoomUnavailable(booking.RoomID)
		}
		res, err := repo.bookingColl.ReplaceOne(sc, bson.M{"id": booking.ID}, booking)
		if err != nil {
			return utils.NewPersistence("update booking", err)
		}
		if res.MatchedCount == 0 {
			return utils.NewNotFound("booking", booking.ID)
		}
		return nil
	})
	if err != nil && database.IsTransient(err) {
		return utils.NewConflict("concurrent booking write detected, please retry")
	}
	return err
}

func (repo *MongoBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	res, err := repo.bookingColl.ReplaceOne(ctx, bson.M{"id": booking.ID}, booking)
	if err != nil {
		return utils.NewPersistence("update booking", err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFound("booking", booking.ID)
	}
	return nil
}
