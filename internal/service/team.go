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

// ListTeamMembers returns all team members, newest number first.
func ListTeamMembers() ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := repo.Db.Order("number desc").Find(&members).Error
	return members, err
}

// ListTeamMembersByType returns current members or alumni.
func ListTeamMembersByType(memberType string) ([]model.TeamMember, error) {
	if !isTeamType(memberType) {
		return nil, fmt.Errorf("%w: invalid type %q", ErrValidation, memberType)
	}
	var members []model.TeamMember
	err := repo.Db.Where("type = ?", memberType).Order("number desc").Find(&members).Error
	return members, err
}

// GetTeamMember loads one team member by id.
func GetTeamMember(id uint64) (*model.TeamMember, error) {
	var member model.TeamMember
	err := repo.Db.Where("id = ?", id).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: team member %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// CreateTeamMember validates and persists a new team member.
func CreateTeamMember(req *dto.TeamMemberRequest) (*model.TeamMember, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Number == nil {
		return nil, fmt.Errorf("%w: number is required", ErrValidation)
	}
	if req.Role == nil || strings.TrimSpace(*req.Role) == "" {
		return nil, fmt.Errorf("%w: role is required", ErrValidation)
	}
	if req.Img == nil || *req.Img == "" {
		return nil, fmt.Errorf("%w: img is required", ErrValidation)
	}
	if req.Type == nil {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}
	member := &model.TeamMember{}
	applyTeamMemberRequest(member, req)
	if err := validateTeamMemberState(member); err != nil {
		return nil, err
	}
	if err := repo.Db.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateTeamMember applies the fields present in req and cleans up a
// replaced photo.
func UpdateTeamMember(ctx context.Context, id uint64, req *dto.TeamMemberRequest) (*model.TeamMember, error) {
	lock := lockRecord(ctx, "team", id)
	defer unlockRecord(ctx, lock)

	member, err := GetTeamMember(id)
	if err != nil {
		return nil, err
	}
	oldRefs := imageRefs(member.Img)

	applyTeamMemberRequest(member, req)
	if err := validateTeamMemberState(member); err != nil {
		return nil, err
	}
	if err := repo.Db.Save(member).Error; err != nil {
		return nil, err
	}

	CleanupImages(ctx, oldRefs, imageRefs(member.Img))
	return member, nil
}

// DeleteTeamMember removes the record, then its photo.
func DeleteTeamMember(ctx context.Context, id uint64) error {
	lock := lockRecord(ctx, "team", id)
	defer unlockRecord(ctx, lock)

	member, err := GetTeamMember(id)
	if err != nil {
		return err
	}
	if err := repo.Db.Delete(&model.TeamMember{}, id).Error; err != nil {
		return err
	}
	CleanupImages(ctx, imageRefs(member.Img), nil)
	return nil
}

// validateTeamMemberState checks the required fields on the record as it
// would be persisted, so updates cannot blank them out.
func validateTeamMemberState(member *model.TeamMember) error {
	if !isTeamType(member.Type) {
		return fmt.Errorf("%w: invalid type %q", ErrValidation, member.Type)
	}
	if strings.TrimSpace(member.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(member.Role) == "" {
		return fmt.Errorf("%w: role is required", ErrValidation)
	}
	if member.Img == "" {
		return fmt.Errorf("%w: img is required", ErrValidation)
	}
	return nil
}

func applyTeamMemberRequest(member *model.TeamMember, req *dto.TeamMemberRequest) {
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Number != nil {
		member.Number = *req.Number
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Img != nil {
		member.Img = *req.Img
	}
	if req.Type != nil {
		member.Type = *req.Type
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.LinkedIn != nil {
		member.LinkedIn = *req.LinkedIn
	}
}

func isTeamType(memberType string) bool {
	return memberType == model.TeamTypeCurrent || memberType == model.TeamTypeAlumni
}
