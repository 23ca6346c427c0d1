package repository

import (
	"context"
	"sync"
	"time"

	"teamroster/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRecordRepository is an in-memory IRecordRepository with the same
// contract as the Mongo implementation, including the no-op semantics of
// update/delete for missing ids. Used by tests and local development
// without a database.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	order   []primitive.ObjectID
	records map[primitive.ObjectID]*model.Record
}

func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{records: map[primitive.ObjectID]*model.Record{}}
}

func (r *MemoryRecordRepository) Create(ctx context.Context, fields model.RecordFields) (*model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	rec := &model.Record{
		ID:            primitive.NewObjectID(),
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
	r.records[rec.ID] = rec
	r.order = append(r.order, rec.ID)

	clone := *rec
	return &clone, nil
}

// FindAll returns records in insertion order
func (r *MemoryRecordRepository) FindAll(ctx context.Context) ([]*model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := []*model.Record{}
	for _, id := range r.order {
		if rec, ok := r.records[id]; ok {
			clone := *rec
			records = append(records, &clone)
		}
	}
	return records, nil
}

func (r *MemoryRecordRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields model.RecordFields) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		// Soft contract: missing id reports success
		return nil
	}
	rec.Country = fields.Country
	rec.AccountType = fields.AccountType
	rec.Username = fields.Username
	rec.FirstName = fields.FirstName
	rec.LastName = fields.LastName
	rec.Email = fields.Email
	rec.ContactNumber = fields.ContactNumber
	rec.PhotoURL = fields.PhotoURL
	rec.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryRecordRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return nil
	}
	delete(r.records, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
