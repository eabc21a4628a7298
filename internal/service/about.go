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

// ListAboutContent returns all about-page sections.
func ListAboutContent() ([]model.AboutContent, error) {
	var sections []model.AboutContent
	err := repo.Db.Find(&sections).Error
	return sections, err
}

// GetAboutContent loads one about section by id.
func GetAboutContent(id uint64) (*model.AboutContent, error) {
	var section model.AboutContent
	err := repo.Db.Where("id = ?", id).First(&section).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: about content %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// CreateAboutContent validates and persists an about section.
func CreateAboutContent(req *dto.AboutContentRequest) (*model.AboutContent, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Content == nil || len(*req.Content) == 0 {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	section := &model.AboutContent{}
	applyAboutContentRequest(section, req)
	if err := repo.Db.Create(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

// UpdateAboutContent applies the fields present in req and cleans up block
// images that dropped out.
func UpdateAboutContent(ctx context.Context, id uint64, req *dto.AboutContentRequest) (*model.AboutContent, error) {
	lock := lockRecord(ctx, "about", id)
	defer unlockRecord(ctx, lock)

	section, err := GetAboutContent(id)
	if err != nil {
		return nil, err
	}
	oldRefs := blockImageRefs(section.Content)

	applyAboutContentRequest(section, req)
	if strings.TrimSpace(section.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if err := repo.Db.Save(section).Error; err != nil {
		return nil, err
	}

	CleanupImages(ctx, oldRefs, blockImageRefs(section.Content))
	return section, nil
}

// DeleteAboutContent removes the record, then its block images.
func DeleteAboutContent(ctx context.Context, id uint64) error {
	lock := lockRecord(ctx, "about", id)
	defer unlockRecord(ctx, lock)

	section, err := GetAboutContent(id)
	if err != nil {
		return err
	}
	if err := repo.Db.Delete(&model.AboutContent{}, id).Error; err != nil {
		return err
	}
	CleanupImages(ctx, blockImageRefs(section.Content), nil)
	return nil
}

func applyAboutContentRequest(section *model.AboutContent, req *dto.AboutContentRequest) {
	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Content != nil {
		section.Content = *req.Content
	}
}

func blockImageRefs(blocks []model.ContentBlock) []string {
	refs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.Img != "" {
			refs = append(refs, block.Img)
		}
	}
	return refs
}
