package main

import (
	"LabSite/config"
	"LabSite/internal/repo"
	"LabSite/internal/storage"
	"LabSite/router"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitMysql()
	repo.InitRedis()
	storage.InitMinio()

	r := router.InitRouter()

	r.Run(":8000")
}
