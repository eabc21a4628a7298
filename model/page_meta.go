package model

import "time"

// PageMeta holds per-page metadata, keyed by page identifier. The PUT
// handler upserts, so at most one row exists per identifier.
type PageMeta struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	PageIdentifier string `gorm:"column:page_identifier;type:varchar(128);not null;uniqueIndex" json:"pageIdentifier"`

	Title       string `gorm:"column:title;type:varchar(512);not null;default:''" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`

	RepresentativeImages []string `gorm:"column:representative_images;serializer:json" json:"representativeImages"`

	HomeYoutubeID string `gorm:"column:home_youtube_id;type:varchar(64);not null;default:''" json:"homeYoutubeId"`

	FooterAddress     string `gorm:"column:footer_address;type:varchar(512);not null;default:''" json:"footerAddress"`
	FooterAddressLink string `gorm:"column:footer_address_link;type:varchar(512);not null;default:''" json:"footerAddressLink"`
	FooterPhone       string `gorm:"column:footer_phone;type:varchar(64);not null;default:''" json:"footerPhone"`
	FooterEmail       string `gorm:"column:footer_email;type:varchar(255);not null;default:''" json:"footerEmail"`
	FooterHeadline    string `gorm:"column:footer_headline;type:varchar(512);not null;default:''" json:"footerHeadline"`
	FooterSubtext     string `gorm:"column:footer_subtext;type:varchar(512);not null;default:''" json:"footerSubtext"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name.
func (PageMeta) TableName() string {
	return "page_meta"
}
