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

// ListPublications returns all publications, newest number first.
func ListPublications() ([]model.Publication, error) {
	var publications []model.Publication
	err := repo.Db.Order("number desc").Find(&publications).Error
	return publications, err
}

// ListPublicationsByType returns journal or conference publications.
func ListPublicationsByType(pubType string) ([]model.Publication, error) {
	if !isPublicationType(pubType) {
		return nil, fmt.Errorf("%w: invalid type %q", ErrValidation, pubType)
	}
	var publications []model.Publication
	err := repo.Db.Where("type = ?", pubType).Order("number desc").Find(&publications).Error
	return publications, err
}

// GetPublication loads one publication by id.
func GetPublication(id uint64) (*model.Publication, error) {
	var publication model.Publication
	err := repo.Db.Where("id = ?", id).First(&publication).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: publication %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &publication, nil
}

// CreatePublication validates and persists a new publication.
func CreatePublication(req *dto.PublicationRequest) (*model.Publication, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Number == nil {
		return nil, fmt.Errorf("%w: number is required", ErrValidation)
	}
	if req.Authors == nil || len(*req.Authors) == 0 {
		return nil, fmt.Errorf("%w: authors are required", ErrValidation)
	}
	if req.Year == nil {
		return nil, fmt.Errorf("%w: year is required", ErrValidation)
	}
	if req.Type == nil {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}
	publication := &model.Publication{}
	applyPublicationRequest(publication, req)
	if err := validatePublicationState(publication); err != nil {
		return nil, err
	}
	if err := repo.Db.Create(publication).Error; err != nil {
		return nil, err
	}
	return publication, nil
}

// UpdatePublication applies the fields present in req and cleans up a
// replaced image.
func UpdatePublication(ctx context.Context, id uint64, req *dto.PublicationRequest) (*model.Publication, error) {
	lock := lockRecord(ctx, "publication", id)
	defer unlockRecord(ctx, lock)

	publication, err := GetPublication(id)
	if err != nil {
		return nil, err
	}
	oldRefs := imageRefs(publication.Image)

	applyPublicationRequest(publication, req)
	if err := validatePublicationState(publication); err != nil {
		return nil, err
	}
	if err := repo.Db.Save(publication).Error; err != nil {
		return nil, err
	}

	CleanupImages(ctx, oldRefs, imageRefs(publication.Image))
	return publication, nil
}

// DeletePublication removes the record, then its image.
func DeletePublication(ctx context.Context, id uint64) error {
	lock := lockRecord(ctx, "publication", id)
	defer unlockRecord(ctx, lock)

	publication, err := GetPublication(id)
	if err != nil {
		return err
	}
	if err := repo.Db.Delete(&model.Publication{}, id).Error; err != nil {
		return err
	}
	CleanupImages(ctx, imageRefs(publication.Image), nil)
	return nil
}

// validatePublicationState checks the required fields on the record as it
// would be persisted, so updates cannot blank them out.
func validatePublicationState(publication *model.Publication) error {
	if !isPublicationType(publication.Type) {
		return fmt.Errorf("%w: invalid type %q", ErrValidation, publication.Type)
	}
	if strings.TrimSpace(publication.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(publication.Authors) == 0 {
		return fmt.Errorf("%w: authors are required", ErrValidation)
	}
	if publication.Year == 0 {
		return fmt.Errorf("%w: year is required", ErrValidation)
	}
	return nil
}

func applyPublicationRequest(publication *model.Publication, req *dto.PublicationRequest) {
	if req.Title != nil {
		publication.Title = *req.Title
	}
	if req.Number != nil {
		publication.Number = *req.Number
	}
	if req.Authors != nil {
		publication.Authors = *req.Authors
	}
	if req.Venue != nil {
		publication.Venue = *req.Venue
	}
	if req.Year != nil {
		publication.Year = *req.Year
	}
	if req.DOI != nil {
		publication.DOI = *req.DOI
	}
	if req.Link != nil {
		publication.Link = *req.Link
	}
	if req.Abstract != nil {
		publication.Abstract = *req.Abstract
	}
	if req.Type != nil {
		publication.Type = *req.Type
	}
	if req.Location != nil {
		publication.Location = *req.Location
	}
	if req.Image != nil {
		publication.Image = *req.Image
	}
}

func isPublicationType(pubType string) bool {
	return pubType == model.PublicationTypeJournal || pubType == model.PublicationTypeConference
}
