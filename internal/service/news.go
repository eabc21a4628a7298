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

// ListNews returns all news items, newest number first.
func ListNews() ([]model.News, error) {
	var items []model.News
	err := repo.Db.Order("number desc").Find(&items).Error
	return items, err
}

// GetNews loads one news item by id.
func GetNews(id uint64) (*model.News, error) {
	var item model.News
	err := repo.Db.Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: news %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateNews validates and persists a news item.
func CreateNews(req *dto.NewsRequest) (*model.News, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Number == nil {
		return nil, fmt.Errorf("%w: number is required", ErrValidation)
	}
	if req.Date == nil || strings.TrimSpace(*req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if req.Content == nil || strings.TrimSpace(*req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if req.Type == nil || strings.TrimSpace(*req.Type) == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}
	item := &model.News{}
	applyNewsRequest(item, req)
	if err := validateNewsState(item); err != nil {
		return nil, err
	}
	if err := repo.Db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateNews applies the fields present in req and cleans up images that
// dropped out of the list.
func UpdateNews(ctx context.Context, id uint64, req *dto.NewsRequest) (*model.News, error) {
	lock := lockRecord(ctx, "news", id)
	defer unlockRecord(ctx, lock)

	item, err := GetNews(id)
	if err != nil {
		return nil, err
	}
	oldRefs := append([]string(nil), item.Images...)

	applyNewsRequest(item, req)
	if err := validateNewsState(item); err != nil {
		return nil, err
	}
	if err := repo.Db.Save(item).Error; err != nil {
		return nil, err
	}

	CleanupImages(ctx, oldRefs, item.Images)
	return item, nil
}

// DeleteNews removes the record, then all of its images.
func DeleteNews(ctx context.Context, id uint64) error {
	lock := lockRecord(ctx, "news", id)
	defer unlockRecord(ctx, lock)

	item, err := GetNews(id)
	if err != nil {
		return err
	}
	if err := repo.Db.Delete(&model.News{}, id).Error; err != nil {
		return err
	}
	CleanupImages(ctx, item.Images, nil)
	return nil
}

// validateNewsState checks the required fields on the record as it would
// be persisted, so updates cannot blank them out.
func validateNewsState(item *model.News) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(item.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if strings.TrimSpace(item.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	if strings.TrimSpace(item.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	return nil
}

func applyNewsRequest(item *model.News, req *dto.NewsRequest) {
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Number != nil {
		item.Number = *req.Number
	}
	if req.Date != nil {
		item.Date = *req.Date
	}
	if req.Images != nil {
		item.Images = *req.Images
	}
	if req.Content != nil {
		item.Content = *req.Content
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
}
