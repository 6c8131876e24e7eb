// Bootstrap script: seeds the department list and an initial admin account.
// cmd/seed/main.go
package main

import (
	"log"
	"os"
	"time"

	"thesis-management-api/config"
	"thesis-management-api/models"
	"thesis-management-api/utils"

	"github.com/joho/godotenv"
)

var departments = []models.Department{
	{Name: "Computer Science", Code: "CS", Description: "Department of Computer Science"},
	{Name: "Electrical Engineering", Code: "EE", Description: "Department of Electrical Engineering"},
	{Name: "Mathematics", Code: "MATH", Description: "Department of Mathematics"},
	{Name: "Physics", Code: "PHYS", Description: "Department of Physics"},
	{Name: "Business Administration", Code: "BA", Description: "Department of Business Administration"},
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	for _, dept := range departments {
		var existing models.Department
		if err := config.DB.Where("code = ?", dept.Code).First(&existing).Error; err == nil {
			log.Printf("Department %s already exists, skipping\n", dept.Code)
			continue
		}
		if err := config.DB.Create(&dept).Error; err != nil {
			log.Printf("Failed to create department %s: %v\n", dept.Code, err)
			continue
		}
		log.Printf("Created department %s\n", dept.Code)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Printf("Admin %s already exists, skipping\n", adminEmail)
		return
	}

	hashedPassword, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	admin := models.User{
		Email:     adminEmail,
		Password:  hashedPassword,
		FirstName: "System",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin account:", err)
	}

	log.Printf("Created admin account %s\n", adminEmail)
}
