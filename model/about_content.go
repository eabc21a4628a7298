package model

import "time"

// ContentBlock is one titled section of the about page. Img is a stored
// image URL and participates in orphan cleanup like any other image field.
type ContentBlock struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Img   string `json:"img"`
}

type AboutContent struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Title   string         `gorm:"column:title;type:varchar(512);not null" json:"title"`
	Content []ContentBlock `gorm:"column:content;serializer:json" json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name.
func (AboutContent) TableName() string {
	return "about_content"
}
