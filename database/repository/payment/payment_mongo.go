package paymentRepo

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

// PaymentRepository defines persistence operations for payments. Payments
// are insert-only; corrections happen administratively outside the core.
type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	Insert(ctx context.Context, payment *models.Payment) error
	ListByInvoice(ctx context.Context, invoiceID string) ([]models.Payment, error)
	// SumPaidForBooking aggregates the amounts of every payment recorded
	// against any of the booking's invoices.
	SumPaidForBooking(ctx context.Context, bookingID string) (float64, error)
	EnsureIndexes() error
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a new instance of MongoPaymentRepo.
func NewMongoPaymentRepo() PaymentRepository {
	return &MongoPaymentRepo{coll: database.DB().Collection("payments")}
}

func (repo *MongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("payment", id)
		}
		return nil, utils.NewPersistence("fetch payment", err)
	}
	return &payment, nil
}

func (repo *MongoPaymentRepo) Insert(ctx context.Context, payment *models.Payment) error {
	if _, err := repo.coll.InsertOne(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflict("payment reference " + payment.Reference + " already recorded")
		}
		return utils.NewPersistence("insert payment", err)
	}
	return nil
}

func (repo *MongoPaymentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"invoice_id": invoiceID})
	if err != nil {
		return nil, utils.NewPersistence("list payments", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, utils.NewPersistence("decode payments", err)
	}
	return payments, nil
}

func (repo *MongoPaymentRepo) SumPaidForBooking(ctx context.Context, bookingID string) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"booking_id": bookingID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, utils.NewPersistence("sum payments", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, utils.NewPersistence("decode payment sum", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, utils.NewPersistence("sum payments", err)
	}
	return result.Total, nil
}

// EnsureIndexes creates the necessary indexes on the payments collection.
// The sparse unique index on reference rejects a second write with the
// same gateway reference.
func (repo *MongoPaymentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "invoice_id", Value: 1}},
			Options: options.Index().SetName("invoice_idx"),
		},
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetName("booking_idx"),
		},
		{
			Keys:    bson.D{{Key: "reference", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("unique_reference"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}
	return nil
}
