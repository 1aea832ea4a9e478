package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/models"
	"github.com/vitartas/leadtrack/internal/tenant"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

// Initial password for sellers created by an owner; meant to be changed on
// first login.
const defaultSellerPassword = "mudar123"

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// CreateSeller adds a SELLER account to the caller's store.
func (s *TeamService) CreateSeller(sess *tenant.Session, req *dto.CreateSellerRequest) (*models.User, error) {
	if sess.StoreID == nil {
		return nil, ErrNoStore
	}
	if req.Name == "" || req.Email == "" {
		return nil, errors.New("name and email are required")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	password := req.Password
	if password == "" {
		password = defaultSellerPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	seller := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleSeller,
		StoreID:  sess.StoreID,
	}
	if err := s.db.Create(&seller).Error; err != nil {
		return nil, fmt.Errorf("failed to create seller: %w", err)
	}
	return &seller, nil
}

// ListTeam returns the caller's store members, owner first.
func (s *TeamService) ListTeam(sess *tenant.Session) ([]dto.TeamMemberResponse, error) {
	if sess.StoreID == nil {
		return nil, ErrNoStore
	}

	var users []models.User
	err := s.db.Scopes(tenant.ForStore(*sess.StoreID)).
		Order("role ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.TeamMemberResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.TeamMemberResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
	}
	return out, nil
}

// UpdateUserByAdmin edits any user's name, email, role and store binding.
// SUPER_ADMIN accounts never carry a store; OWNER/SELLER always must.
func (s *TeamService) UpdateUserByAdmin(userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	if !models.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}
	if req.Role == models.RoleSuperAdmin && req.StoreID != nil {
		return nil, errors.New("super admin accounts cannot belong to a store")
	}
	if req.Role != models.RoleSuperAdmin && req.StoreID == nil {
		return nil, errors.New("owner and seller accounts require a store")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != user.Email {
		var count int64
		s.db.Model(&models.User{}).Where("email = ? AND id <> ?", req.Email, userID).Count(&count)
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}

	if req.StoreID != nil {
		var count int64
		s.db.Model(&models.Store{}).Where("id = ?", *req.StoreID).Count(&count)
		if count == 0 {
			return nil, ErrStoreNotFound
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	user.StoreID = req.StoreID

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}
