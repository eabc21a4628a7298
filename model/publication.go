package model

import "time"

// Publication types.
const (
	PublicationTypeJournal    = "journal"
	PublicationTypeConference = "conference"
)

type Publication struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Title    string   `gorm:"column:title;type:varchar(512);not null" json:"title"`
	Number   int      `gorm:"column:number;not null" json:"number"`
	Authors  []string `gorm:"column:authors;serializer:json" json:"authors"`
	Venue    string   `gorm:"column:venue;type:varchar(512);not null;default:''" json:"venue"`
	Year     int      `gorm:"column:year;not null" json:"year"`
	DOI      string   `gorm:"column:doi;type:varchar(255);not null;default:''" json:"doi"`
	Link     string   `gorm:"column:link;type:varchar(512);not null;default:''" json:"link"`
	Abstract string   `gorm:"column:abstract;type:text" json:"abstract"`

	// Type is either "journal" or "conference".
	Type string `gorm:"column:type;type:varchar(16);not null;index" json:"type"`

	Location string `gorm:"column:location;type:varchar(255);not null;default:''" json:"location"`
	Image    string `gorm:"column:image;type:varchar(512);not null;default:''" json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name.
func (Publication) TableName() string {
	return "publications"
}
