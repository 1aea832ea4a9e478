package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vitartas/leadtrack/internal/config"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/models"
	"github.com/vitartas/leadtrack/internal/tenant"
	"gorm.io/gorm"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

type LeadService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewLeadService(db *gorm.DB, cfg *config.Config) *LeadService {
	return &LeadService{db: db, cfg: cfg}
}

// Create registers a lead from the dashboard. Value is the acquisition cost
// attributed to the lead; empty means zero.
func (s *LeadService) Create(sess *tenant.Session, req *dto.CreateLeadRequest) (*models.Lead, error) {
	if sess.StoreID == nil {
		return nil, ErrNoStore
	}
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, errors.New("customer name and phone are required")
	}

	var valueCents int64
	if strings.TrimSpace(req.Value) != "" {
		var err error
		valueCents, err = ParsePriceCents(req.Value)
		if err != nil {
			return nil, err
		}
	}

	lead := models.Lead{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ValueCents:    valueCents,
		Status:        models.LeadStatusNew,
		StoreID:       *sess.StoreID,
	}
	if err := s.db.Create(&lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return &lead, nil
}

// CreatePublic captures an anonymous storefront lead for the store behind
// the slug, and returns the check-in code shown to the customer.
func (s *LeadService) CreatePublic(slug string, req *dto.PublicLeadRequest) (*dto.PublicLeadResponse, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, errors.New("customer name and phone are required")
	}

	var store models.Store
	if err := s.db.Where("slug = ?", strings.ToLower(slug)).First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	lead := models.Lead{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ValueCents:    s.cfg.LeadDefaultCostCents,
		Status:        models.LeadStatusNew,
		StoreID:       store.ID,
	}
	if err := s.db.Create(&lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return &dto.PublicLeadResponse{Success: true, QRCode: lead.CheckinCode()}, nil
}

// UpdateStatus moves a lead to any of the six statuses. There is no
// transition table: any status may follow any other.
func (s *LeadService) UpdateStatus(sess *tenant.Session, leadID uuid.UUID, status string) (*models.Lead, error) {
	if !models.IsValidLeadStatus(status) {
		return nil, ErrInvalidLeadStatus
	}

	var lead models.Lead
	if err := s.db.First(&lead, "id = ?", leadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	if !sess.CanAccessStore(lead.StoreID) {
		return nil, ErrNotStoreData
	}

	if err := s.db.Model(&lead).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}
	lead.Status = status
	return &lead, nil
}

// ListForStore returns the caller's leads, newest first.
func (s *LeadService) ListForStore(sess *tenant.Session) ([]models.Lead, error) {
	if sess.StoreID == nil {
		return nil, ErrNoStore
	}

	var leads []models.Lead
	err := s.db.Scopes(tenant.ForStore(*sess.StoreID)).
		Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

// ListAll returns every lead across all stores with the store name attached,
// for the global admin board.
func (s *LeadService) ListAll() ([]dto.LeadWithStore, error) {
	var leads []models.Lead
	if err := s.db.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string)
	var stores []models.Store
	if err := s.db.Select("id", "name").Find(&stores).Error; err != nil {
		return nil, err
	}
	for _, store := range stores {
		names[store.ID] = store.Name
	}

	out := make([]dto.LeadWithStore, 0, len(leads))
	for _, lead := range leads {
		out = append(out, dto.LeadWithStore{Lead: lead, StoreName: names[lead.StoreID]})
	}
	return out, nil
}
