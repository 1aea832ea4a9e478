package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vitartas/leadtrack/internal/config"
	"github.com/vitartas/leadtrack/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperAdmin upserts the platform operator account from the environment.
// Idempotent: an existing account with the configured email is left alone.
// A no-op when ADMIN_EMAIL/ADMIN_PASSWORD are unset.
func SeedSuperAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Info("admin seed skipped, ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		slog.Info("super admin already exists", "email", cfg.AdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}

	slog.Info("super admin created", "email", cfg.AdminEmail)
	return nil
}
