package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleOwner      = "OWNER"
	RoleSeller     = "SELLER"
)

var Roles = []string{RoleSuperAdmin, RoleOwner, RoleSeller}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if role == r {
			return true
		}
	}
	return false
}

// User is a platform account. StoreID is nil for SUPER_ADMIN and always set
// for OWNER/SELLER.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Email     string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Role      string     `gorm:"size:20;not null;default:'SELLER'" json:"role"`
	StoreID   *uuid.UUID `gorm:"type:uuid;index" json:"store_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
