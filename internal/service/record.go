package service

import (
	"context"
	"fmt"

	"teamroster/internal/config"
	"teamroster/internal/model"
	"teamroster/internal/repository"
	"teamroster/internal/validation"
	"teamroster/pkg/logger"
	"teamroster/pkg/storage"
	"teamroster/pkg/util"

	"go.uber.org/zap"
)

// PhotoUpload is a submitted photo payload
type PhotoUpload struct {
	Name    string
	Content []byte
}

// SaveInput is one create/update submission. ID is empty for a create.
// ExistingPhotoURL is the photo reference the client passes through when
// editing without uploading a new photo.
type SaveInput struct {
	ID               string
	Fields           map[string]string
	ExistingPhotoURL *string
	Photo            *PhotoUpload
}

// SaveOutcome is the result of a successful save
type SaveOutcome struct {
	Created  bool
	Message  string
	Record   *model.Record
	PhotoURL *string
}

// RecordService orchestrates validation, photo storage and store mutation
type RecordService struct {
	cfg    *config.Config
	repo   repository.IRecordRepository
	photos storage.PhotoStorage
}

// NewRecordService creates a new record service
func NewRecordService(cfg *config.Config, repo repository.IRecordRepository, photos storage.PhotoStorage) *RecordService {
	return &RecordService{cfg: cfg, repo: repo, photos: photos}
}

// List returns all stored records
func (s *RecordService) List(ctx context.Context) ([]*model.Record, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return records, nil
}

// Save runs one submission through the workflow: validate, persist the
// photo if one was uploaded, then create or update the record depending
// on whether an id was supplied.
//
// There is no rollback: a photo written before a failed record persist
// stays on disk, orphaned. That matches the original behavior; the
// orphan is logged so it is at least observable.
func (s *RecordService) Save(ctx context.Context, in SaveInput) (*SaveOutcome, error) {
	fields, fieldErrs := validation.ValidateRecord(in.Fields)
	if fieldErrs != nil {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	photoURL := in.ExistingPhotoURL
	photoStored := false
	if in.Photo != nil && validation.UsablePhoto(in.Photo.Name, int64(len(in.Photo.Content))) {
		ref, err := s.photos.Save(in.Photo.Content, in.Photo.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPhotoWrite, err)
		}
		photoURL = &ref
		photoStored = true
	}
	fields.PhotoURL = photoURL

	if in.ID != "" {
		objID, err := util.ParseObjectID(in.ID)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{"id": "Invalid record id"}}
		}
		if err := s.repo.UpdateByID(ctx, objID, fields); err != nil {
			s.logOrphan(ctx, photoStored, photoURL)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return &SaveOutcome{Message: "Record updated successfully", PhotoURL: photoURL}, nil
	}

	rec, err := s.repo.Create(ctx, fields)
	if err != nil {
		s.logOrphan(ctx, photoStored, photoURL)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &SaveOutcome{Created: true, Message: "Record created successfully", Record: rec, PhotoURL: photoURL}, nil
}

// Delete removes a record by id. The associated photo file is left in
// storage, consistent with the orphan policy above.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	objID, err := util.ParseObjectID(id)
	if err != nil {
		return &ValidationError{Fields: map[string]string{"id": "Invalid record id"}}
	}
	if err := s.repo.DeleteByID(ctx, objID); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RecordService) logOrphan(ctx context.Context, photoStored bool, photoURL *string) {
	if !photoStored || photoURL == nil {
		return
	}
	logger.Warn(ctx, "photo stored but record persist failed, file orphaned",
		zap.String("photoUrl", *photoURL))
}
