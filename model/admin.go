package model

import "time"

// Admin is the single credential consulted for authentication.
type Admin struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Username string `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`

	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the database table name.
func (Admin) TableName() string {
	return "admins"
}
