package guestRepo

import (
	"context"
	"errors"
	"time"

	"hotelier/database"
	"hotelier/models"
	"hotelier/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GuestRepository exposes the guest lookups the booking core needs. Guest
// CRUD lives in the surrounding application.
type GuestRepository interface {
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// MongoGuestRepo implements GuestRepository using MongoDB.
type MongoGuestRepo struct {
	coll *mongo.Collection
}

func NewMongoGuestRepo() GuestRepository {
	return &MongoGuestRepo{coll: database.DB().Collection("guests")}
}

func (repo *MongoGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var guest models.Guest
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guest); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("guest", id)
		}
		return nil, utils.NewPersistence("fetch guest", err)
	}
	return &guest, nil
}

func (repo *MongoGuestRepo) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return false, utils.NewPersistence("count guests", err)
	}
	return count > 0, nil
}
