package staffRepo

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

// StaffRepository exposes the employee lookups the booking and billing
// cores need.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

func NewMongoStaffRepo() StaffRepository {
	return &MongoStaffRepo{coll: database.DB().Collection("staff")}
}

func (repo *MongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("staff", id)
		}
		return nil, utils.NewPersistence("fetch staff", err)
	}
	return &staff, nil
}

func (repo *MongoStaffRepo) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return false, utils.NewPersistence("count staff", err)
	}
	return count > 0, nil
}
