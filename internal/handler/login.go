package handler

import (
	"LabSite/internal/dto"
	"LabSite/internal/service"
	"LabSite/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login authenticates the admin and returns a signed token.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}
	adminID, ok := service.VerifyAdminPassword(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}
	token, err := utils.GenerateToken(adminID, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
