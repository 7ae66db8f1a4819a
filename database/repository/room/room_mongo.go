package roomRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelier/database"
	"hotelier/models"
	"hotelier/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a new instance of MongoRoomRepo.
func NewMongoRoomRepo() RoomRepository {
	return &MongoRoomRepo{coll: database.DB().Collection("rooms")}
}

func (repo *MongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("room", id)
		}
		return nil, utils.NewPersistence("fetch room", err)
	}
	return &room, nil
}

func (repo *MongoRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, utils.NewPersistence("list rooms", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, utils.NewPersistence("decode rooms", err)
	}
	return rooms, nil
}

func (repo *MongoRoomRepo) Insert(ctx context.Context, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, room); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflict(fmt.Sprintf("room %s already exists", room.Number))
		}
		return utils.NewPersistence("insert room", err)
	}
	return nil
}

func (repo *MongoRoomRepo) Update(ctx context.Context, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": room.ID}, room)
	if err != nil {
		return utils.NewPersistence("update room", err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFound("room", room.ID)
	}
	return nil
}

func (repo *MongoRoomRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return utils.NewPersistence("delete room", err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFound("room", id)
	}
	return nil
}

func (repo *MongoRoomRepo) TouchCalendar(ctx context.Context, id string) error {
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"calendar_version": 1}},
	)
	if err != nil {
		return utils.NewPersistence("touch room calendar", err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFound("room", id)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the rooms collection.
func (repo *MongoRoomRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_number"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create room indexes: %w", err)
	}
	return nil
}
