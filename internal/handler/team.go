package handler

import (
	"LabSite/internal/dto"
	"LabSite/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListTeamMembers returns all team members.
func ListTeamMembers(c *gin.Context) {
	members, err := service.ListTeamMembers()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// ListTeamMembersByType returns current members or alumni.
func ListTeamMembersByType(c *gin.Context) {
	members, err := service.ListTeamMembersByType(c.Param("type"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetTeamMember returns one team member.
func GetTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	member, err := service.GetTeamMember(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateTeamMember creates a team member.
func CreateTeamMember(c *gin.Context) {
	var req dto.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	member, err := service.CreateTeamMember(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember partially updates a team member.
func UpdateTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	member, err := service.UpdateTeamMember(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember deletes a team member and their photo.
func DeleteTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := service.DeleteTeamMember(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
