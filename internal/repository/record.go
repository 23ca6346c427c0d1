package repository

import (
	"context"
	"fmt"
	"time"

	"teamroster/internal/config"
	"teamroster/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IRecordRepository defines record persistence
type IRecordRepository interface {
	Create(ctx context.Context, fields model.RecordFields) (*model.Record, error)
	FindAll(ctx context.Context) ([]*model.Record, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields model.RecordFields) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// RecordRepository implements record persistence over a Mongo collection
type RecordRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewRecordRepository(cfg *config.Config, db *mongo.Database) IRecordRepository {
	return &RecordRepository{cfg: cfg, collection: db.Collection(config.DefaultRecordCollection)}
}

// Create assigns a new id and timestamps and inserts the record
func (r *RecordRepository) Create(ctx context.Context, fields model.RecordFields) (*model.Record, error) {
	now := time.Now().UTC()
	rec := &model.Record{
		Country:       fields.Country,
		AccountType:   fields.AccountType,
		Username:      fields.Username,
		FirstName:     fields.FirstName,
		LastName:      fields.LastName,
		Email:         fields.Email,
		ContactNumber: fields.ContactNumber,
		PhotoURL:      fields.PhotoURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	res, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid
	}
	return rec, nil
}

// FindAll returns every stored record in the collection's natural order
func (r *RecordRepository) FindAll(ctx context.Context) ([]*model.Record, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []*model.Record{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// UpdateByID replaces all mutable fields of the matching record and bumps
// updatedAt. Matching no document is not an error: callers must not rely
// on update failing for a missing id.
func (r *RecordRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields model.RecordFields) error {
	update := bson.M{
		"$set": bson.M{
			"country":       fields.Country,
			"accountType":   fields.AccountType,
			"username":      fields.Username,
			"firstName":     fields.FirstName,
			"lastName":      fields.LastName,
			"email":         fields.Email,
			"contactNumber": fields.ContactNumber,
			"photoUrl":      fields.PhotoURL,
			"updatedAt":     time.Now().UTC(),
		},
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

// DeleteByID removes the matching record. Like UpdateByID, a missing id
// is a no-op without error.
func (r *RecordRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
