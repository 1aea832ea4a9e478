package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vitartas/leadtrack/internal/config"
	"github.com/vitartas/leadtrack/internal/models"
	"github.com/vitartas/leadtrack/internal/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Store{},
		&models.User{},
		&models.RefreshToken{},
		&models.Vehicle{},
		&models.VehicleImage{},
		&models.Lead{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:            "test-secret-key-for-jwt-signing",
		JWTAccessExpiry:      15 * time.Minute,
		JWTRefreshExpiry:     24 * time.Hour,
		LeadDefaultCostCents: 2500,
	}
}

// seedStore inserts a store directly, bypassing the service paths under test.
func seedStore(t *testing.T, db *gorm.DB, name string) *models.Store {
	t.Helper()

	store := &models.Store{
		Name:               name,
		Slug:               generateSlug(name),
		CNPJ:               syntheticCNPJ(),
		Plan:               models.PlanPro,
		SubscriptionActive: true,
	}
	require.NoError(t, db.Create(store).Error)
	return store
}

func ownerSession(store *models.Store) *tenant.Session {
	return &tenant.Session{
		UserID:  uuid.New(),
		Email:   "owner@" + store.Slug + ".test",
		Role:    models.RoleOwner,
		StoreID: &store.ID,
	}
}

func adminSession() *tenant.Session {
	return &tenant.Session{
		UserID: uuid.New(),
		Email:  "admin@leadtrack.test",
		Role:   models.RoleSuperAdmin,
	}
}
