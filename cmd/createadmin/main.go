package main

import (
	"LabSite/config"
	"LabSite/internal/repo"
	"LabSite/internal/service"
	"flag"
	"log"
	"os"
)

// createadmin provisions the single admin credential. The site has no
// registration flow; run this once before first login.
func main() {
	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("username and password are required (flags or ADMIN_USERNAME/ADMIN_PASSWORD)")
	}

	config.InitConfig()
	repo.InitMysql()

	admin, err := service.CreateAdmin(*username, *password)
	if err != nil {
		log.Fatalf("create admin failed: %v", err)
	}
	log.Printf("admin %q created (id %d)", admin.Username, admin.ID)
}
