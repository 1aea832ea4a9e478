package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/models"
	"github.com/vitartas/leadtrack/internal/tenant"
	"gorm.io/gorm"
)

var (
	ErrNoStore         = errors.New("no store associated with this account")
	ErrNotStoreData    = errors.New("this record belongs to another store")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidPrice    = errors.New("price is missing or malformed")
)

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

// ParsePriceCents converts a formatted currency string ("R$ 85.000,00") to
// integer cents by keeping only the digits. Input with no digits is an
// error, never a silent zero.
func ParsePriceCents(raw string) (int64, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, ErrInvalidPrice
	}

	var cents int64
	for _, r := range digits.String() {
		d := int64(r - '0')
		if cents > (1<<62)/10 {
			return 0, ErrInvalidPrice
		}
		cents = cents*10 + d
	}
	return cents, nil
}

func (s *VehicleService) Create(sess *tenant.Session, req *dto.VehicleRequest) (*models.Vehicle, error) {
	if sess.StoreID == nil {
		return nil, ErrNoStore
	}
	if req.Brand == "" || req.Model == "" {
		return nil, errors.New("brand and model are required")
	}

	priceCents, err := ParsePriceCents(req.Price)
	if err != nil {
		return nil, err
	}

	vehicle := models.Vehicle{
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		PriceCents:  priceCents,
		KM:          req.KM,
		Description: req.Description,
		IsAvailable: true,
		StoreID:     *sess.StoreID,
	}
	if req.IsAvailable != nil {
		vehicle.IsAvailable = *req.IsAvailable
	}
	if req.ImageURL != "" {
		vehicle.Images = []models.VehicleImage{{URL: req.ImageURL}}
	}

	if err := s.db.Create(&vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return &vehicle, nil
}

func (s *VehicleService) Update(sess *tenant.Session, vehicleID uuid.UUID, req *dto.VehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.get(sess, vehicleID)
	if err != nil {
		return nil, err
	}

	priceCents, err := ParsePriceCents(req.Price)
	if err != nil {
		return nil, err
	}

	vehicle.Brand = req.Brand
	vehicle.Model = req.Model
	vehicle.Year = req.Year
	vehicle.PriceCents = priceCents
	vehicle.KM = req.KM
	vehicle.Description = req.Description
	if req.IsAvailable != nil {
		vehicle.IsAvailable = *req.IsAvailable
	}

	if err := s.db.Save(vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	// Image replacement: drop whatever was there, keep at most the one URL
	// from the form.
	if err := s.db.Where("vehicle_id = ?", vehicle.ID).Delete(&models.VehicleImage{}).Error; err != nil {
		return nil, fmt.Errorf("failed to clear vehicle images: %w", err)
	}
	vehicle.Images = nil
	if strings.TrimSpace(req.ImageURL) != "" {
		img := models.VehicleImage{URL: req.ImageURL, VehicleID: vehicle.ID}
		if err := s.db.Create(&img).Error; err != nil {
			return nil, fmt.Errorf("failed to save vehicle image: %w", err)
		}
		vehicle.Images = []models.VehicleImage{img}
	}

	return vehicle, nil
}

func (s *VehicleService) Delete(sess *tenant.Session, vehicleID uuid.UUID) error {
	vehicle, err := s.get(sess, vehicleID)
	if err != nil {
		return err
	}

	if err := s.db.Where("vehicle_id = ?", vehicle.ID).Delete(&models.VehicleImage{}).Error; err != nil {
		return err
	}
	return s.db.Delete(vehicle).Error
}

// ListForStore returns the caller's inventory with images, newest first.
func (s *VehicleService) ListForStore(sess *tenant.Session) ([]models.Vehicle, error) {
	if sess.StoreID == nil {
		return nil, ErrNoStore
	}

	var vehicles []models.Vehicle
	err := s.db.Scopes(tenant.ForStore(*sess.StoreID)).
		Preload("Images").
		Order("created_at DESC").
		Find(&vehicles).Error
	return vehicles, err
}

// get loads a vehicle and enforces the tenant boundary: a row belonging to
// another store is off limits unless the caller is SUPER_ADMIN.
func (s *VehicleService) get(sess *tenant.Session, vehicleID uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	if !sess.CanAccessStore(vehicle.StoreID) {
		return nil, ErrNotStoreData
	}
	return &vehicle, nil
}
