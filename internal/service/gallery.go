package service

import (
	"LabSite/internal/dto"
	"LabSite/internal/repo"
	"LabSite/model"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ListGalleryEvents returns all gallery events, newest number first.
func ListGalleryEvents() ([]model.GalleryEvent, error) {
	var events []model.GalleryEvent
	err := repo.Db.Order("number desc").Find(&events).Error
	return events, err
}

// GetGalleryEvent loads one gallery event by id.
func GetGalleryEvent(id uint64) (*model.GalleryEvent, error) {
	var event model.GalleryEvent
	err := repo.Db.Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: gallery event %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateGalleryEvent validates and persists a gallery event.
func CreateGalleryEvent(req *dto.GalleryEventRequest) (*model.GalleryEvent, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Number == nil {
		return nil, fmt.Errorf("%w: number is required", ErrValidation)
	}
	if req.Date == nil || strings.TrimSpace(*req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	event := &model.GalleryEvent{}
	applyGalleryEventRequest(event, req)
	if err := validateGalleryEventState(event); err != nil {
		return nil, err
	}
	if err := repo.Db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateGalleryEvent applies the fields present in req and cleans up images
// that dropped out of the list.
func UpdateGalleryEvent(ctx context.Context, id uint64, req *dto.GalleryEventRequest) (*model.GalleryEvent, error) {
	lock := lockRecord(ctx, "gallery", id)
	defer unlockRecord(ctx, lock)

	event, err := GetGalleryEvent(id)
	if err != nil {
		return nil, err
	}
	oldRefs := append([]string(nil), event.Images...)

	applyGalleryEventRequest(event, req)
	if err := validateGalleryEventState(event); err != nil {
		return nil, err
	}
	if err := repo.Db.Save(event).Error; err != nil {
		return nil, err
	}

	CleanupImages(ctx, oldRefs, event.Images)
	return event, nil
}

// DeleteGalleryEvent removes the record, then all of its images.
func DeleteGalleryEvent(ctx context.Context, id uint64) error {
	lock := lockRecord(ctx, "gallery", id)
	defer unlockRecord(ctx, lock)

	event, err := GetGalleryEvent(id)
	if err != nil {
		return err
	}
	if err := repo.Db.Delete(&model.GalleryEvent{}, id).Error; err != nil {
		return err
	}
	CleanupImages(ctx, event.Images, nil)
	return nil
}

// validateGalleryEventState checks the required fields on the record as it
// would be persisted, so updates cannot blank them out.
func validateGalleryEventState(event *model.GalleryEvent) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(event.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	return nil
}

func applyGalleryEventRequest(event *model.GalleryEvent, req *dto.GalleryEventRequest) {
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Number != nil {
		event.Number = *req.Number
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Images != nil {
		event.Images = *req.Images
	}
	if req.Type != nil {
		event.Type = *req.Type
	}
}
