package main

import (
	"log"

	"github.com/Abiral12/Stock-Management-system/internal/config"
	"github.com/Abiral12/Stock-Management-system/internal/model"
	"github.com/Abiral12/Stock-Management-system/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Maintenance tool: resets the admin password back to the configured default.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.Connect(cfg)

	// 3. Find Admin
	var admin model.Admin
	if err := db.Where("username = ?", cfg.AdminUsername).First(&admin).Error; err != nil {
		log.Fatalf("Admin %s not found in database: %v", cfg.AdminUsername, err)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update
	if err := db.Model(&admin).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Success! Password for %s has been reset to the configured default", cfg.AdminUsername)
}
