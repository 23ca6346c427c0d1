package repository

import (
	"context"
	"testing"

	"teamroster/internal/model"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleFields(username string) model.RecordFields {
	return model.RecordFields{
		Country:       "Canada",
		AccountType:   model.AccountTypeTeamMember,
		Username:      username,
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@x.com",
		ContactNumber: "555-0100",
	}
}

func TestMemoryRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := NewMemoryRecordRepository()

	rec, err := repo.Create(context.Background(), sampleFields("jdoe"))
	require.NoError(t, err)
	require.False(t, rec.ID.IsZero())
	require.False(t, rec.CreatedAt.IsZero())
	require.Equal(t, rec.CreatedAt, rec.UpdatedAt)
	require.Equal(t, "jdoe", rec.Username)
	require.Nil(t, rec.PhotoURL)
}

func TestMemoryRepository_FindAllInsertionOrder(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, sampleFields(name))
		require.NoError(t, err)
	}

	records, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "a", records[0].Username)
	require.Equal(t, "b", records[1].Username)
	require.Equal(t, "c", records[2].Username)
}

func TestMemoryRepository_FindAllEmpty(t *testing.T) {
	repo := NewMemoryRecordRepository()
	records, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
	require.NotNil(t, records)
}

func TestMemoryRepository_UpdateReplacesFields(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()

	rec, err := repo.Create(ctx, sampleFields("jdoe"))
	require.NoError(t, err)

	fields := sampleFields("jdoe")
	fields.LastName = "Smith"
	require.NoError(t, repo.UpdateByID(ctx, rec.ID, fields))

	records, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Smith", records[0].LastName)
	require.Equal(t, rec.ID, records[0].ID)
	require.Equal(t, rec.CreatedAt, records[0].CreatedAt)
	require.False(t, records[0].UpdatedAt.Before(rec.UpdatedAt))
}

func TestMemoryRepository_UpdateMissingIDIsNoOp(t *testing.T) {
	repo := NewMemoryRecordRepository()
	err := repo.UpdateByID(context.Background(), primitive.NewObjectID(), sampleFields("ghost"))
	require.NoError(t, err)

	records, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestMemoryRepository_DeleteByID(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()

	rec, err := repo.Create(ctx, sampleFields("jdoe"))
	require.NoError(t, err)
	keep, err := repo.Create(ctx, sampleFields("other"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, rec.ID))

	records, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, keep.ID, records[0].ID)
}

func TestMemoryRepository_DeleteMissingIDIsNoOp(t *testing.T) {
	repo := NewMemoryRecordRepository()
	err := repo.DeleteByID(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
}

func TestMemoryRepository_FindAllReturnsCopies(t *testing.T) {
	repo := NewMemoryRecordRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleFields("jdoe"))
	require.NoError(t, err)

	records, err := repo.FindAll(ctx)
	require.NoError(t, err)
	records[0].Username = "mutated"

	again, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "jdoe", again[0].Username)
}
