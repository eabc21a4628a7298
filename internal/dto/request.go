package dto

import "LabSite/model"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Mutation requests use pointer fields so updates only touch the fields
// actually present in the body. An explicit empty value clears a field;
// an omitted field keeps its stored value. Create paths check required
// fields in the service layer.

type ProfessorRequest struct {
	Name       *string                    `json:"name"`
	Role       *string                    `json:"role"`
	Img        *string                    `json:"img"`
	Desc       *string                    `json:"desc"`
	CVLink     *string                    `json:"cvLink"`
	Email      *string                    `json:"email"`
	Phone      *string                    `json:"phone"`
	Stats      *[]model.Stat              `json:"stats"`
	Interests  *string                    `json:"interests"`
	Background *[]model.BackgroundSection `json:"background"`
}

type TeamMemberRequest struct {
	Name     *string `json:"name"`
	Number   *int    `json:"number"`
	Role     *string `json:"role"`
	Img      *string `json:"img"`
	Type     *string `json:"type"`
	Bio      *string `json:"bio"`
	LinkedIn *string `json:"linkedIn"`
}

type ProjectRequest struct {
	Title       *string   `json:"title"`
	Number      *int      `json:"number"`
	Subtitle    *string   `json:"subtitle"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Link        *string   `json:"link"`
	Status      *string   `json:"status"`
	Year        *int      `json:"year"`
	AwardName   *string   `json:"awardName"`
	Authors     *[]string `json:"authors"`
	Tags        *[]string `json:"tags"`
}

type PublicationRequest struct {
	Title    *string   `json:"title"`
	Number   *int      `json:"number"`
	Authors  *[]string `json:"authors"`
	Venue    *string   `json:"venue"`
	Year     *int      `json:"year"`
	DOI      *string   `json:"doi"`
	Link     *string   `json:"link"`
	Abstract *string   `json:"abstract"`
	Type     *string   `json:"type"`
	Location *string   `json:"location"`
	Image    *string   `json:"image"`
}

type NewsRequest struct {
	Title   *string   `json:"title"`
	Number  *int      `json:"number"`
	Date    *string   `json:"date"`
	Images  *[]string `json:"images"`
	Content *string   `json:"content"`
	Type    *string   `json:"type"`
}

type GalleryEventRequest struct {
	Title    *string   `json:"title"`
	Number   *int      `json:"number"`
	Date     *string   `json:"date"`
	Location *string   `json:"location"`
	Images   *[]string `json:"images"`
	Type     *string   `json:"type"`
}

type AboutContentRequest struct {
	Title   *string               `json:"title"`
	Content *[]model.ContentBlock `json:"content"`
}

type PageMetaRequest struct {
	Title                *string   `json:"title"`
	Description          *string   `json:"description"`
	RepresentativeImages *[]string `json:"representativeImages"`
	HomeYoutubeID        *string   `json:"homeYoutubeId"`
	FooterAddress        *string   `json:"footerAddress"`
	FooterAddressLink    *string   `json:"footerAddressLink"`
	FooterPhone          *string   `json:"footerPhone"`
	FooterEmail          *string   `json:"footerEmail"`
	FooterHeadline       *string   `json:"footerHeadline"`
	FooterSubtext        *string   `json:"footerSubtext"`
}
