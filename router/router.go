package router

import (
	"LabSite/internal/handler"
	"LabSite/internal/service"
	"LabSite/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes. Reads are public; mutations sit behind the
// admin auth middleware.
func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.POST("/auth/login", handler.Login)

		api.GET("/professor", handler.GetProfessor)
		api.GET("/team", handler.ListTeamMembers)
		api.GET("/team/type/:type", handler.ListTeamMembersByType)
		api.GET("/team/:id", handler.GetTeamMember)
		api.GET("/projects", handler.ListProjects)
		api.GET("/projects/status/:status", handler.ListProjectsByStatus)
		api.GET("/projects/:id", handler.GetProject)
		api.GET("/publications", handler.ListPublications)
		api.GET("/publications/type/:type", handler.ListPublicationsByType)
		api.GET("/publications/:id", handler.GetPublication)
		api.GET("/news", handler.ListNews)
		api.GET("/news/:id", handler.GetNews)
		api.GET("/gallery", handler.ListGalleryEvents)
		api.GET("/gallery/:id", handler.GetGalleryEvent)
		api.GET("/about", handler.ListAboutContent)
		api.GET("/about/:id", handler.GetAboutContent)
		api.GET("/meta/:pageIdentifier", handler.GetPageMeta)

		admin := api.Group("")
		admin.Use(utils.AuthMiddleware(service.VerifyAdminPassword))
		{
			admin.POST("/upload", handler.Upload)

			admin.POST("/professor", handler.CreateProfessor)
			admin.PUT("/professor", handler.UpdateProfessor)
			admin.DELETE("/professor", handler.DeleteProfessor)

			admin.POST("/team", handler.CreateTeamMember)
			admin.PUT("/team/:id", handler.UpdateTeamMember)
			admin.DELETE("/team/:id", handler.DeleteTeamMember)

			admin.POST("/projects", handler.CreateProject)
			admin.PUT("/projects/:id", handler.UpdateProject)
			admin.DELETE("/projects/:id", handler.DeleteProject)

			admin.POST("/publications", handler.CreatePublication)
			admin.PUT("/publications/:id", handler.UpdatePublication)
			admin.DELETE("/publications/:id", handler.DeletePublication)

			admin.POST("/news", handler.CreateNews)
			admin.PUT("/news/:id", handler.UpdateNews)
			admin.DELETE("/news/:id", handler.DeleteNews)

			admin.POST("/gallery", handler.CreateGalleryEvent)
			admin.PUT("/gallery/:id", handler.UpdateGalleryEvent)
			admin.DELETE("/gallery/:id", handler.DeleteGalleryEvent)

			admin.POST("/about", handler.CreateAboutContent)
			admin.PUT("/about/:id", handler.UpdateAboutContent)
			admin.DELETE("/about/:id", handler.DeleteAboutContent)

			admin.PUT("/meta/:pageIdentifier", handler.UpsertPageMeta)
			admin.DELETE("/meta/:pageIdentifier", handler.DeletePageMeta)
		}
	}
	return r
}
