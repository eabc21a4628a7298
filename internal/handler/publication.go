package handler

import (
	"LabSite/internal/dto"
	"LabSite/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPublications returns all publications.
func ListPublications(c *gin.Context) {
	publications, err := service.ListPublications()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, publications)
}

// ListPublicationsByType returns journal or conference publications.
func ListPublicationsByType(c *gin.Context) {
	publications, err := service.ListPublicationsByType(c.Param("type"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, publications)
}

// GetPublication returns one publication.
func GetPublication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	publication, err := service.GetPublication(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, publication)
}

// CreatePublication creates a publication.
func CreatePublication(c *gin.Context) {
	var req dto.PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	publication, err := service.CreatePublication(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, publication)
}

// UpdatePublication partially updates a publication.
func UpdatePublication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	publication, err := service.UpdatePublication(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, publication)
}

// DeletePublication deletes a publication and its image.
func DeletePublication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := service.DeletePublication(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
