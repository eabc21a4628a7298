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

// GetProfessor returns the singleton professor profile.
func GetProfessor() (*model.Professor, error) {
	var professor model.Professor
	err := repo.Db.First(&professor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: professor profile", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &professor, nil
}

// CreateProfessor creates the singleton profile. A second create is
// rejected; callers must update the existing one.
func CreateProfessor(req *dto.ProfessorRequest) (*model.Professor, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	var count int64
	if err := repo.Db.Model(&model.Professor{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: professor profile already exists, update it instead", ErrConflict)
	}
	professor := &model.Professor{}
	applyProfessorRequest(professor, req)
	if err := repo.Db.Create(professor).Error; err != nil {
		return nil, err
	}
	return professor, nil
}

// UpdateProfessor applies the fields present in req to the singleton.
func UpdateProfessor(ctx context.Context, req *dto.ProfessorRequest) (*model.Professor, error) {
	professor, err := GetProfessor()
	if err != nil {
		return nil, err
	}

	lock := lockRecord(ctx, "professor", professor.ID)
	defer unlockRecord(ctx, lock)

	oldRefs := imageRefs(professor.Img)
	applyProfessorRequest(professor, req)
	if strings.TrimSpace(professor.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := repo.Db.Save(professor).Error; err != nil {
		return nil, err
	}

	CleanupImages(ctx, oldRefs, imageRefs(professor.Img))
	return professor, nil
}

// DeleteProfessor removes the singleton profile and its image.
func DeleteProfessor(ctx context.Context) error {
	professor, err := GetProfessor()
	if err != nil {
		return err
	}

	lock := lockRecord(ctx, "professor", professor.ID)
	defer unlockRecord(ctx, lock)

	if err := repo.Db.Delete(&model.Professor{}, professor.ID).Error; err != nil {
		return err
	}
	CleanupImages(ctx, imageRefs(professor.Img), nil)
	return nil
}

func applyProfessorRequest(professor *model.Professor, req *dto.ProfessorRequest) {
	if req.Name != nil {
		professor.Name = *req.Name
	}
	if req.Role != nil {
		professor.Role = *req.Role
	}
	if req.Img != nil {
		professor.Img = *req.Img
	}
	if req.Desc != nil {
		professor.Desc = *req.Desc
	}
	if req.CVLink != nil {
		professor.CVLink = *req.CVLink
	}
	if req.Email != nil {
		professor.Email = *req.Email
	}
	if req.Phone != nil {
		professor.Phone = *req.Phone
	}
	if req.Stats != nil {
		professor.Stats = *req.Stats
	}
	if req.Interests != nil {
		professor.Interests = *req.Interests
	}
	if req.Background != nil {
		professor.Background = *req.Background
	}
}
