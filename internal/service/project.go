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

// ListProjects returns all projects, newest number first.
func ListProjects() ([]model.Project, error) {
	var projects []model.Project
	err := repo.Db.Order("number desc").Find(&projects).Error
	return projects, err
}

// ListProjectsByStatus returns projects with one status, newest number first.
func ListProjectsByStatus(status string) ([]model.Project, error) {
	if !isProjectStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	var projects []model.Project
	err := repo.Db.Where("status = ?", status).Order("number desc").Find(&projects).Error
	return projects, err
}

// GetProject loads one project by id.
func GetProject(id uint64) (*model.Project, error) {
	var project model.Project
	err := repo.Db.Where("id = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject validates and persists a new project.
func CreateProject(req *dto.ProjectRequest) (*model.Project, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Number == nil {
		return nil, fmt.Errorf("%w: number is required", ErrValidation)
	}
	if req.Status == nil {
		return nil, fmt.Errorf("%w: status is required", ErrValidation)
	}
	project := &model.Project{}
	applyProjectRequest(project, req)
	if err := validateProjectState(project); err != nil {
		return nil, err
	}
	if err := repo.Db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject applies the fields present in req, re-validates the
// resulting state and cleans up a replaced image.
func UpdateProject(ctx context.Context, id uint64, req *dto.ProjectRequest) (*model.Project, error) {
	lock := lockRecord(ctx, "project", id)
	defer unlockRecord(ctx, lock)

	project, err := GetProject(id)
	if err != nil {
		return nil, err
	}
	oldRefs := imageRefs(project.Image)

	applyProjectRequest(project, req)
	if err := validateProjectState(project); err != nil {
		return nil, err
	}
	if err := repo.Db.Save(project).Error; err != nil {
		return nil, err
	}

	CleanupImages(ctx, oldRefs, imageRefs(project.Image))
	return project, nil
}

// DeleteProject removes the record, then its stored image.
func DeleteProject(ctx context.Context, id uint64) error {
	lock := lockRecord(ctx, "project", id)
	defer unlockRecord(ctx, lock)

	project, err := GetProject(id)
	if err != nil {
		return err
	}
	if err := repo.Db.Delete(&model.Project{}, id).Error; err != nil {
		return err
	}
	CleanupImages(ctx, imageRefs(project.Image), nil)
	return nil
}

func applyProjectRequest(project *model.Project, req *dto.ProjectRequest) {
	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Number != nil {
		project.Number = *req.Number
	}
	if req.Subtitle != nil {
		project.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Image != nil {
		project.Image = *req.Image
	}
	if req.Link != nil {
		project.Link = *req.Link
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Year != nil {
		project.Year = *req.Year
	}
	if req.AwardName != nil {
		project.AwardName = *req.AwardName
	}
	if req.Authors != nil {
		project.Authors = *req.Authors
	}
	if req.Tags != nil {
		project.Tags = *req.Tags
	}
	// awardName only exists for award projects
	if project.Status != model.ProjectStatusAward {
		project.AwardName = ""
	}
}

// validateProjectState checks the status enum and its conditional fields
// on the record as it would be persisted.
func validateProjectState(project *model.Project) error {
	switch project.Status {
	case model.ProjectStatusCurrent:
	case model.ProjectStatusCompleted:
		if project.Year == 0 {
			return fmt.Errorf("%w: year is required for completed projects", ErrValidation)
		}
	case model.ProjectStatusAward:
		if project.Year == 0 {
			return fmt.Errorf("%w: year is required for award projects", ErrValidation)
		}
		if strings.TrimSpace(project.AwardName) == "" {
			return fmt.Errorf("%w: awardName is required for award projects", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: invalid status %q", ErrValidation, project.Status)
	}
	if strings.TrimSpace(project.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	return nil
}

func isProjectStatus(status string) bool {
	switch status {
	case model.ProjectStatusCurrent, model.ProjectStatusCompleted, model.ProjectStatusAward:
		return true
	}
	return false
}
