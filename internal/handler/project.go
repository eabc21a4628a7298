package handler

import (
	"LabSite/internal/dto"
	"LabSite/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListProjects returns all projects.
func ListProjects(c *gin.Context) {
	projects, err := service.ListProjects()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListProjectsByStatus returns projects filtered by status.
func ListProjectsByStatus(c *gin.Context) {
	projects, err := service.ListProjectsByStatus(c.Param("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns one project.
func GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := service.GetProject(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject creates a project.
func CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	project, err := service.CreateProject(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject partially updates a project.
func UpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	project, err := service.UpdateProject(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project and its image.
func DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := service.DeleteProject(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
