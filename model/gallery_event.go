package model

type GalleryEvent struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Title  string `gorm:"column:title;type:varchar(512);not null" json:"title"`
	Number int    `gorm:"column:number;not null" json:"number"`

	// Date is an ISO 8601 string.
	Date string `gorm:"column:date;type:varchar(64);not null" json:"date"`

	Location string   `gorm:"column:location;type:varchar(255);not null;default:''" json:"location"`
	Images   []string `gorm:"column:images;serializer:json" json:"images"`
	Type     string   `gorm:"column:type;type:varchar(64);not null;default:''" json:"type"`
}

// TableName returns the database table name.
func (GalleryEvent) TableName() string {
	return "gallery_events"
}
