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

// GetPageMeta loads the metadata for one page.
func GetPageMeta(pageIdentifier string) (*model.PageMeta, error) {
	var meta model.PageMeta
	err := repo.Db.Where("page_identifier = ?", pageIdentifier).First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: meta for page %q", ErrNotFound, pageIdentifier)
	}
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// UpsertPageMeta ensures exactly one metadata row per page identifier:
// it creates the row on first write and partially updates it afterwards.
func UpsertPageMeta(ctx context.Context, pageIdentifier string, req *dto.PageMetaRequest) (*model.PageMeta, error) {
	pageIdentifier = strings.TrimSpace(pageIdentifier)
	if pageIdentifier == "" {
		return nil, fmt.Errorf("%w: pageIdentifier is required", ErrValidation)
	}

	meta, err := GetPageMeta(pageIdentifier)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		meta = &model.PageMeta{PageIdentifier: pageIdentifier}
		applyPageMetaRequest(meta, req)
		if createErr := repo.Db.Create(meta).Error; createErr != nil {
			if repo.IsDuplicateKey(createErr) {
				return nil, fmt.Errorf("%w: meta for page %q", ErrConflict, pageIdentifier)
			}
			return nil, createErr
		}
		return meta, nil
	}

	lock := lockRecord(ctx, "meta", meta.ID)
	defer unlockRecord(ctx, lock)

	oldRefs := append([]string(nil), meta.RepresentativeImages...)
	applyPageMetaRequest(meta, req)
	if err := repo.Db.Save(meta).Error; err != nil {
		return nil, err
	}

	CleanupImages(ctx, oldRefs, meta.RepresentativeImages)
	return meta, nil
}

// DeletePageMeta removes the row, then its representative images.
func DeletePageMeta(ctx context.Context, pageIdentifier string) error {
	meta, err := GetPageMeta(pageIdentifier)
	if err != nil {
		return err
	}

	lock := lockRecord(ctx, "meta", meta.ID)
	defer unlockRecord(ctx, lock)

	if err := repo.Db.Delete(&model.PageMeta{}, meta.ID).Error; err != nil {
		return err
	}
	CleanupImages(ctx, meta.RepresentativeImages, nil)
	return nil
}

func applyPageMetaRequest(meta *model.PageMeta, req *dto.PageMetaRequest) {
	if req.Title != nil {
		meta.Title = *req.Title
	}
	if req.Description != nil {
		meta.Description = *req.Description
	}
	if req.RepresentativeImages != nil {
		meta.RepresentativeImages = *req.RepresentativeImages
	}
	if req.HomeYoutubeID != nil {
		meta.HomeYoutubeID = *req.HomeYoutubeID
	}
	if req.FooterAddress != nil {
		meta.FooterAddress = *req.FooterAddress
	}
	if req.FooterAddressLink != nil {
		meta.FooterAddressLink = *req.FooterAddressLink
	}
	if req.FooterPhone != nil {
		meta.FooterPhone = *req.FooterPhone
	}
	if req.FooterEmail != nil {
		meta.FooterEmail = *req.FooterEmail
	}
	if req.FooterHeadline != nil {
		meta.FooterHeadline = *req.FooterHeadline
	}
	if req.FooterSubtext != nil {
		meta.FooterSubtext = *req.FooterSubtext
	}
}
