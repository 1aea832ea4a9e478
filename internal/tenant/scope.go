package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForStore returns a GORM scope that filters by store_id.
func ForStore(storeID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("store_id = ?", storeID)
	}
}
