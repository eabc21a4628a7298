package handler

import (
	"LabSite/internal/dto"
	"LabSite/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPageMeta returns the metadata for one page.
func GetPageMeta(c *gin.Context) {
	meta, err := service.GetPageMeta(c.Param("pageIdentifier"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

// UpsertPageMeta creates or partially updates the metadata for one page.
func UpsertPageMeta(c *gin.Context) {
	var req dto.PageMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	meta, err := service.UpsertPageMeta(c.Request.Context(), c.Param("pageIdentifier"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

// DeletePageMeta deletes the metadata for one page and its images.
func DeletePageMeta(c *gin.Context) {
	if err := service.DeletePageMeta(c.Request.Context(), c.Param("pageIdentifier")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
