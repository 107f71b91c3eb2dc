package config

import (
	"log"
	"os"

	"go-asset-management/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the initial login account from ADMIN_USERNAME /
// ADMIN_PASSWORD. Idempotent; does nothing once the account exists.
func SeedAdmin() {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var cnt int64
	DB.Model(&models.Admin{}).Where("username = ?", username).Count(&cnt)
	if cnt > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.Admin{
		Username:     username,
		FullName:     "Administrator",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin account: %v", err)
		return
	}
	log.Printf("Seeded admin account %q", username)
}
