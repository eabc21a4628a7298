package handler

import (
	"LabSite/internal/dto"
	"LabSite/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNews returns all news items.
func ListNews(c *gin.Context) {
	items, err := service.ListNews()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetNews returns one news item.
func GetNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := service.GetNews(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateNews creates a news item.
func CreateNews(c *gin.Context) {
	var req dto.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	item, err := service.CreateNews(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateNews partially updates a news item.
func UpdateNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	item, err := service.UpdateNews(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteNews deletes a news item and its images.
func DeleteNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := service.DeleteNews(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
