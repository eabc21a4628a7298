package handler

import (
	"LabSite/internal/dto"
	"LabSite/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProfessor returns the singleton professor profile.
func GetProfessor(c *gin.Context) {
	professor, err := service.GetProfessor()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, professor)
}

// CreateProfessor creates the profile; a second create is a conflict.
func CreateProfessor(c *gin.Context) {
	var req dto.ProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	professor, err := service.CreateProfessor(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, professor)
}

// UpdateProfessor partially updates the profile.
func UpdateProfessor(c *gin.Context) {
	var req dto.ProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	professor, err := service.UpdateProfessor(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, professor)
}

// DeleteProfessor deletes the profile and its image.
func DeleteProfessor(c *gin.Context) {
	if err := service.DeleteProfessor(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
