package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store plans.
const (
	PlanTrial      = "TRIAL"
	PlanFree       = "FREE"
	PlanPro        = "PRO"
	PlanEnterprise = "ENTERPRISE"
)

var Plans = []string{PlanTrial, PlanFree, PlanPro, PlanEnterprise}

func IsValidPlan(plan string) bool {
	for _, p := range Plans {
		if plan == p {
			return true
		}
	}
	return false
}

// Store is a dealership tenant. Slug and CNPJ are globally unique; the slug
// doubles as the public storefront URL segment.
type Store struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	Slug               string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	CNPJ               string    `gorm:"size:30;not null;uniqueIndex" json:"cnpj"`
	Address            string    `gorm:"size:255" json:"address"`
	Phone              string    `gorm:"size:30" json:"phone"`
	PrimaryColor       string    `gorm:"size:7;default:'#3b82f6'" json:"primary_color"`
	Plan               string    `gorm:"size:20;not null;default:'TRIAL'" json:"plan"`
	SubscriptionActive bool      `gorm:"not null;default:false" json:"subscription_active"`
	OwnerName          string    `gorm:"size:255" json:"owner_name"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Users    []User    `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	Vehicles []Vehicle `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	Leads    []Lead    `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
