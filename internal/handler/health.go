package handler

import (
	"LabSite/internal/repo"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports service and database liveness.
func Health(c *gin.Context) {
	if repo.Db != nil {
		if sqlDB, err := repo.Db.DB(); err == nil {
			if err := sqlDB.Ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "message": "database unreachable"})
				return
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
