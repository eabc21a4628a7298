package model

// Team member types.
const (
	TeamTypeCurrent = "current"
	TeamTypeAlumni  = "alumni"
)

type TeamMember struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Number int    `gorm:"column:number;not null" json:"number"`
	Role   string `gorm:"column:role;type:varchar(255);not null" json:"role"`
	Img    string `gorm:"column:img;type:varchar(512);not null" json:"img"`

	// Type is either "current" or "alumni".
	Type string `gorm:"column:type;type:varchar(16);not null;index" json:"type"`

	Bio      string `gorm:"column:bio;type:text" json:"bio"`
	LinkedIn string `gorm:"column:linked_in;type:varchar(512);not null;default:''" json:"linkedIn"`
}

// TableName returns the database table name.
func (TeamMember) TableName() string {
	return "team_members"
}
