package model

type News struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Title  string `gorm:"column:title;type:varchar(512);not null" json:"title"`
	Number int    `gorm:"column:number;not null" json:"number"`

	// Date is an ISO 8601 string, kept as text like the rest of the site data.
	Date string `gorm:"column:date;type:varchar(64);not null" json:"date"`

	Images  []string `gorm:"column:images;serializer:json" json:"images"`
	Content string   `gorm:"column:content;type:text;not null" json:"content"`
	Type    string   `gorm:"column:type;type:varchar(64);not null" json:"type"`
}

// TableName returns the database table name.
func (News) TableName() string {
	return "news"
}
