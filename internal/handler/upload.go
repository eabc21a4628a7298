package handler

import (
	"LabSite/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Upload stores a multipart batch of images content-addressed and returns
// their public URLs in request order.
func Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "multipart form required"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no files to upload"})
		return
	}

	urls, err := service.SaveImages(c.Request.Context(), files)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, urls)
}
