package model

// Stat is a labelled number shown on the professor page.
type Stat struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// BackgroundItem is one period entry inside a background section.
type BackgroundItem struct {
	Period string `json:"period"`
	Desc   string `json:"desc"`
}

// BackgroundSection groups background items by kind (education, career, ...).
type BackgroundSection struct {
	Type  string           `json:"type"`
	Items []BackgroundItem `json:"items"`
}

// Professor is the singleton profile record. At most one row exists.
type Professor struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Role   string `gorm:"column:role;type:varchar(255);not null;default:''" json:"role"`
	Img    string `gorm:"column:img;type:varchar(512);not null;default:''" json:"img"`
	Desc   string `gorm:"column:description;type:text" json:"desc"`
	CVLink string `gorm:"column:cv_link;type:varchar(512);not null;default:''" json:"cvLink"`
	Email  string `gorm:"column:email;type:varchar(255);not null;default:''" json:"email"`
	Phone  string `gorm:"column:phone;type:varchar(64);not null;default:''" json:"phone"`

	Stats      []Stat              `gorm:"column:stats;serializer:json" json:"stats"`
	Interests  string              `gorm:"column:interests;type:text" json:"interests"`
	Background []BackgroundSection `gorm:"column:background;serializer:json" json:"background"`
}

// TableName returns the database table name.
func (Professor) TableName() string {
	return "professors"
}
