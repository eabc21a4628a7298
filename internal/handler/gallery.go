package handler

import (
	"LabSite/internal/dto"
	"LabSite/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListGalleryEvents returns all gallery events.
func ListGalleryEvents(c *gin.Context) {
	events, err := service.ListGalleryEvents()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetGalleryEvent returns one gallery event.
func GetGalleryEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	event, err := service.GetGalleryEvent(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateGalleryEvent creates a gallery event.
func CreateGalleryEvent(c *gin.Context) {
	var req dto.GalleryEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	event, err := service.CreateGalleryEvent(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateGalleryEvent partially updates a gallery event.
func UpdateGalleryEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.GalleryEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	event, err := service.UpdateGalleryEvent(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteGalleryEvent deletes a gallery event and its images.
func DeleteGalleryEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := service.DeleteGalleryEvent(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
