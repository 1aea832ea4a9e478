package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email, password, role string, store *models.Store) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if store != nil {
		user.StoreID = &store.ID
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin_Success(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg)
	store := seedStore(t, db, "Login Store")
	seedUser(t, db, "owner@login.com", "secret123", models.RoleOwner, store)

	resp, err := svc.Login(&dto.LoginRequest{Email: "owner@login.com", Password: "secret123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.RoleOwner, resp.User.Role)
	require.NotNil(t, resp.User.StoreID)
	assert.Equal(t, store.ID, *resp.User.StoreID)
}

func TestLogin_TokenCarriesTenantClaims(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg)
	store := seedStore(t, db, "Claims Store")
	user := seedUser(t, db, "claims@login.com", "secret123", models.RoleOwner, store)

	resp, err := svc.Login(&dto.LoginRequest{Email: "claims@login.com", Password: "secret123"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, models.RoleOwner, claims["role"])
	assert.Equal(t, store.ID.String(), claims["store_id"])
}

func TestLogin_SuperAdminHasNoStoreClaim(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg)
	seedUser(t, db, "admin@platform.com", "secret123", models.RoleSuperAdmin, nil)

	resp, err := svc.Login(&dto.LoginRequest{Email: "admin@platform.com", Password: "secret123"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "", claims["store_id"])
	assert.Nil(t, resp.User.StoreID)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())
	seedUser(t, db, "user@wrong.com", "secret123", models.RoleSeller, nil)

	_, err := svc.Login(&dto.LoginRequest{Email: "user@wrong.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Login(&dto.LoginRequest{Email: "ghost@none.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())
	seedUser(t, db, "rotate@login.com", "secret123", models.RoleSeller, nil)

	first, err := svc.Login(&dto.LoginRequest{Email: "rotate@login.com", Password: "secret123"})
	require.NoError(t, err)

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Single-use: the consumed token must be rejected on replay.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	cfg.JWTRefreshExpiry = -time.Hour
	svc := NewAuthService(db, cfg)
	seedUser(t, db, "expired@login.com", "secret123", models.RoleSeller, nil)

	resp, err := svc.Login(&dto.LoginRequest{Email: "expired@login.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "not-a-real-token"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())
	seedUser(t, db, "logout@login.com", "secret123", models.RoleSeller, nil)

	resp, err := svc.Login(&dto.LoginRequest{Email: "logout@login.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
