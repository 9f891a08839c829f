package admin

import (
	"fmt"
	"os"

	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/utils"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates the initial super-admin account from
// SUPERADMIN_USERNAME/EMAIL/PASSWORD. A no-op when the variables are
// unset or the username already exists, so restarts are safe.
func SeedSuperAdmin(db *gorm.DB) error {
	username := os.Getenv("SUPERADMIN_USERNAME")
	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")

	if username == "" || email == "" || password == "" {
		return nil
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash super-admin password: %v", err)
	}

	u := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}

	return db.Create(&u).Error
}
