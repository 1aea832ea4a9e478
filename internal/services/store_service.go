package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/models"
	"github.com/vitartas/leadtrack/internal/tenant"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrSlugTaken     = errors.New("slug already in use")
	ErrCNPJTaken     = errors.New("cnpj already registered")
	ErrEmailTaken    = errors.New("email already registered")
	ErrStoreNotFound = errors.New("store not found")
	ErrInvalidPlan   = errors.New("invalid plan")
)

type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// Create is the admin-initiated path: store plus its OWNER account in one
// transaction, so a failed user insert never leaves an ownerless store.
func (s *StoreService) Create(req *dto.CreateStoreRequest) (*models.Store, error) {
	if req.Name == "" || req.Slug == "" || req.CNPJ == "" || req.OwnerEmail == "" || len(req.Password) < 6 {
		return nil, errors.New("name, slug, cnpj, owner email and a password of at least 6 characters are required")
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if err := s.checkUnique(slug, req.CNPJ, req.OwnerEmail, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	store := models.Store{
		Name:               req.Name,
		Slug:               slug,
		CNPJ:               req.CNPJ,
		Address:            "Address pending",
		Plan:               models.PlanPro,
		SubscriptionActive: true,
		OwnerName:          req.OwnerName,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&store).Error; err != nil {
			return err
		}
		owner := models.User{
			Name:     req.OwnerName,
			Email:    req.OwnerEmail,
			Password: string(hash),
			Role:     models.RoleOwner,
			StoreID:  &store.ID,
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return &store, nil
}

// RegisterPublic is the self-service signup: the store starts on TRIAL with
// the subscription off, a generated slug and a placeholder CNPJ to be filled
// in manually later.
func (s *StoreService) RegisterPublic(req *dto.RegisterStoreRequest) (*models.Store, error) {
	if req.StoreName == "" || req.OwnerEmail == "" || len(req.Password) < 6 {
		return nil, errors.New("store name, owner email and a password of at least 6 characters are required")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.OwnerEmail).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	store := models.Store{
		Name:               req.StoreName,
		Slug:               generateSlug(req.StoreName),
		CNPJ:               syntheticCNPJ(),
		Plan:               models.PlanTrial,
		SubscriptionActive: false,
		OwnerName:          req.OwnerName,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&store).Error; err != nil {
			return err
		}
		owner := models.User{
			Name:     req.OwnerName,
			Email:    req.OwnerEmail,
			Password: string(hash),
			Role:     models.RoleOwner,
			StoreID:  &store.ID,
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register store: %w", err)
	}

	return &store, nil
}

// Update is the admin edit: full attribute replacement including plan and
// subscription state.
func (s *StoreService) Update(storeID uuid.UUID, req *dto.UpdateStoreRequest) (*models.Store, error) {
	if !models.IsValidPlan(req.Plan) {
		return nil, ErrInvalidPlan
	}

	var store models.Store
	if err := s.db.First(&store, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if err := s.checkUnique(slug, req.CNPJ, "", store.ID); err != nil {
		return nil, err
	}

	store.Name = req.Name
	store.Slug = slug
	store.CNPJ = req.CNPJ
	store.Address = req.Address
	store.Phone = req.Phone
	store.PrimaryColor = req.PrimaryColor
	store.Plan = req.Plan
	store.SubscriptionActive = req.SubscriptionActive
	store.OwnerName = req.OwnerName

	if err := s.db.Save(&store).Error; err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}
	return &store, nil
}

// UpdateSettings is the owner-facing edit: contact details and branding only.
func (s *StoreService) UpdateSettings(sess *tenant.Session, req *dto.StoreSettingsRequest) (*models.Store, error) {
	if sess.StoreID == nil {
		return nil, ErrNoStore
	}

	var store models.Store
	if err := s.db.First(&store, "id = ?", *sess.StoreID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	store.Name = req.Name
	store.Address = req.Address
	store.Phone = req.Phone
	store.PrimaryColor = req.PrimaryColor

	if err := s.db.Save(&store).Error; err != nil {
		return nil, fmt.Errorf("failed to update store settings: %w", err)
	}
	return &store, nil
}

// ToggleSubscription flips subscription_active and nothing else.
func (s *StoreService) ToggleSubscription(storeID uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := s.db.First(&store, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	store.SubscriptionActive = !store.SubscriptionActive
	if err := s.db.Save(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// Delete removes the store and everything that references it, in one
// transaction: leads, vehicle images, vehicles, refresh tokens, users.
func (s *StoreService) Delete(storeID uuid.UUID) error {
	var store models.Store
	if err := s.db.First(&store, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(tenant.ForStore(storeID)).Delete(&models.Lead{}).Error; err != nil {
			return err
		}
		vehicleIDs := tx.Model(&models.Vehicle{}).Select("id").Where("store_id = ?", storeID)
		if err := tx.Where("vehicle_id IN (?)", vehicleIDs).Delete(&models.VehicleImage{}).Error; err != nil {
			return err
		}
		if err := tx.Scopes(tenant.ForStore(storeID)).Delete(&models.Vehicle{}).Error; err != nil {
			return err
		}
		userIDs := tx.Model(&models.User{}).Select("id").Where("store_id = ?", storeID)
		if err := tx.Where("user_id IN (?)", userIDs).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		if err := tx.Scopes(tenant.ForStore(storeID)).Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Delete(&store).Error
	})
}

// ListWithCounts returns every store with its user/vehicle/lead counts for
// the admin panel, newest first.
func (s *StoreService) ListWithCounts() ([]dto.StoreWithCounts, error) {
	var stores []models.Store
	if err := s.db.Order("created_at DESC").Find(&stores).Error; err != nil {
		return nil, err
	}

	out := make([]dto.StoreWithCounts, 0, len(stores))
	for _, store := range stores {
		row := dto.StoreWithCounts{Store: store}
		s.db.Model(&models.User{}).Scopes(tenant.ForStore(store.ID)).Count(&row.UserCount)
		s.db.Model(&models.Vehicle{}).Scopes(tenant.ForStore(store.ID)).Count(&row.VehicleCount)
		s.db.Model(&models.Lead{}).Scopes(tenant.ForStore(store.ID)).Count(&row.LeadCount)
		out = append(out, row)
	}
	return out, nil
}

// GetBySlug loads the public storefront: the store plus its available
// vehicles with images, newest first.
func (s *StoreService) GetBySlug(slug string) (*dto.StorefrontResponse, error) {
	var store models.Store
	if err := s.db.Where("slug = ?", strings.ToLower(slug)).First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	var vehicles []models.Vehicle
	err := s.db.Scopes(tenant.ForStore(store.ID)).
		Where("is_available = ?", true).
		Preload("Images").
		Order("created_at DESC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}

	return &dto.StorefrontResponse{Store: store, Vehicles: vehicles}, nil
}

// GetForSession returns the caller's own store.
func (s *StoreService) GetForSession(sess *tenant.Session) (*models.Store, error) {
	if sess.StoreID == nil {
		return nil, ErrNoStore
	}
	var store models.Store
	if err := s.db.First(&store, "id = ?", *sess.StoreID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

// checkUnique rejects slug/cnpj/email collisions before the insert so the
// caller gets a descriptive error instead of a raw constraint violation.
// excludeID skips the store being edited.
func (s *StoreService) checkUnique(slug, cnpj, ownerEmail string, excludeID uuid.UUID) error {
	var count int64
	s.db.Model(&models.Store{}).Where("slug = ? AND id <> ?", slug, excludeID).Count(&count)
	if count > 0 {
		return ErrSlugTaken
	}
	s.db.Model(&models.Store{}).Where("cnpj = ? AND id <> ?", cnpj, excludeID).Count(&count)
	if count > 0 {
		return ErrCNPJTaken
	}
	if ownerEmail != "" {
		s.db.Model(&models.User{}).Where("email = ?", ownerEmail).Count(&count)
		if count > 0 {
			return ErrEmailTaken
		}
	}
	return nil
}

// generateSlug builds a URL-safe slug from the store name with a short
// random suffix, so two stores with the same name never collide.
func generateSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = strings.ReplaceAll(base, "_", "-")

	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	base = strings.Trim(b.String(), "-")
	if base == "" {
		base = "store"
	}
	return base + "-" + uuid.NewString()[:8]
}

// syntheticCNPJ is a placeholder that satisfies the unique constraint until
// the owner fills in the real document.
func syntheticCNPJ() string {
	return "PENDING-" + uuid.NewString()[:13]
}
