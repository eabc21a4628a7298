package service

import (
	"LabSite/internal/repo"
	"LabSite/model"
	"LabSite/utils"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// CreateAdmin stores the admin credential with a bcrypt password hash.
func CreateAdmin(username, password string) (*model.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	admin := &model.Admin{
		Username:     username,
		PasswordHash: utils.GetPwd(password),
	}
	if err := repo.Db.Create(admin).Error; err != nil {
		if repo.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: admin %q already exists", ErrConflict, username)
		}
		return nil, err
	}
	return admin, nil
}

// GetAdminByUsername loads the admin credential.
func GetAdminByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	err := repo.Db.Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: admin %q", ErrNotFound, username)
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// VerifyAdminPassword checks a username/password pair and returns the admin
// id on success. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func VerifyAdminPassword(username, password string) (uint64, bool) {
	admin, err := GetAdminByUsername(username)
	if err != nil {
		return 0, false
	}
	if !utils.CheckPwd(password, admin.PasswordHash) {
		return 0, false
	}
	return admin.ID, true
}
