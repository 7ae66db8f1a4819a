package invoiceRepo

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

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo constructs a new instance of MongoInvoiceRepo.
func NewMongoInvoiceRepo() InvoiceRepository {
	return &MongoInvoiceRepo{coll: database.DB().Collection("invoices")}
}

func (repo *MongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var invoice models.Invoice
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&invoice); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("invoice", id)
		}
		return nil, utils.NewPersistence("fetch invoice", err)
	}
	return &invoice, nil
}

func (repo *MongoInvoiceRepo) Insert(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, invoice); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflict("invoice " + invoice.ID + " already exists")
		}
		return utils.NewPersistence("insert invoice", err)
	}
	return nil
}

func (repo *MongoInvoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": invoice.ID}, invoice)
	if err != nil {
		return utils.NewPersistence("update invoice", err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFound("invoice", invoice.ID)
	}
	return nil
}

func (repo *MongoInvoiceRepo) FindOpenByBooking(ctx context.Context, bookingID string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"booking_id": bookingID,
		"status":     bson.M{"$ne": models.InvoiceStatusCancelled},
	}
	var invoice models.Invoice
	if err := repo.coll.FindOne(ctx, filter).Decode(&invoice); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, utils.NewPersistence("fetch open invoice", err)
	}
	return &invoice, nil
}

func (repo *MongoInvoiceRepo) FindByBooking(ctx context.Context, bookingID string) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return nil, utils.NewPersistence("list invoices", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, utils.NewPersistence("decode invoices", err)
	}
	return invoices, nil
}

func (repo *MongoInvoiceRepo) FindDueBefore(ctx context.Context, t time.Time) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"due_at": bson.M{"$lt": t},
		"status": bson.M{"$in": []models.InvoiceStatus{
			models.InvoiceStatusUnpaid,
			models.InvoiceStatusPartiallyPaid,
		}},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, utils.NewPersistence("list due invoices", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, utils.NewPersistence("decode due invoices", err)
	}
	return invoices, nil
}

// EnsureIndexes creates the necessary indexes on the invoices collection.
func (repo *MongoInvoiceRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetName("booking_idx"),
		},
		{
			Keys:    bson.D{{Key: "due_at", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("due_status_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create invoice indexes: %w", err)
	}
	return nil
}
