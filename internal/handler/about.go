package handler

import (
	"LabSite/internal/dto"
	"LabSite/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAboutContent returns all about-page sections.
func ListAboutContent(c *gin.Context) {
	sections, err := service.ListAboutContent()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

// GetAboutContent returns one about section.
func GetAboutContent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	section, err := service.GetAboutContent(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

// CreateAboutContent creates an about section.
func CreateAboutContent(c *gin.Context) {
	var req dto.AboutContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	section, err := service.CreateAboutContent(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

// UpdateAboutContent partially updates an about section.
func UpdateAboutContent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AboutContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	section, err := service.UpdateAboutContent(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

// DeleteAboutContent deletes an about section and its block images.
func DeleteAboutContent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := service.DeleteAboutContent(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
