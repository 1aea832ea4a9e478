package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle is one inventory item. PriceCents is the canonical price
// representation: integer minor units, never a float.
type Vehicle struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Brand       string    `gorm:"size:100;not null" json:"brand"`
	Model       string    `gorm:"size:100;not null" json:"model"`
	Year        int       `gorm:"not null" json:"year"`
	PriceCents  int64     `gorm:"not null" json:"price_cents"`
	KM          int       `gorm:"default:0" json:"km"`
	Description string    `gorm:"type:text" json:"description"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Images []VehicleImage `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"images"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

type VehicleImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *VehicleImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
