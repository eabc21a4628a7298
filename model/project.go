package model

import "time"

// Project statuses.
const (
	ProjectStatusCurrent   = "current"
	ProjectStatusCompleted = "completed"
	ProjectStatusAward     = "award"
)

type Project struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"column:title;type:varchar(512);not null" json:"title"`
	Number      int    `gorm:"column:number;not null" json:"number"`
	Subtitle    string `gorm:"column:subtitle;type:varchar(512);not null;default:''" json:"subtitle"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Image       string `gorm:"column:image;type:varchar(512);not null;default:''" json:"image"`
	Link        string `gorm:"column:link;type:varchar(512);not null;default:''" json:"link"`

	// Status is one of "current", "completed", "award". Year is required
	// for completed and award projects; AwardName only exists for awards.
	Status    string `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	Year      int    `gorm:"column:year;not null;default:0" json:"year"`
	AwardName string `gorm:"column:award_name;type:varchar(255);not null;default:''" json:"awardName"`

	Authors []string `gorm:"column:authors;serializer:json" json:"authors"`
	Tags    []string `gorm:"column:tags;serializer:json" json:"tags"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name.
func (Project) TableName() string {
	return "projects"
}
