package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead statuses. The board treats these as six fixed columns; any status may
// follow any other (there is deliberately no transition guard).
const (
	LeadStatusNew        = "NEW"
	LeadStatusContacted  = "CONTACTED"
	LeadStatusScheduled  = "SCHEDULED"
	LeadStatusVisited    = "VISITED"
	LeadStatusClosedSale = "CLOSED_SALE"
	LeadStatusLost       = "LOST"
)

var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusScheduled,
	LeadStatusVisited,
	LeadStatusClosedSale,
	LeadStatusLost,
}

func IsValidLeadStatus(status string) bool {
	for _, s := range LeadStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// Lead is a captured customer interest record. ValueCents is the acquisition
// cost attributed to the lead, in integer minor units.
type Lead struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName  string    `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string    `gorm:"size:30;not null" json:"customer_phone"`
	ValueCents    int64     `gorm:"default:0" json:"value_cents"`
	Status        string    `gorm:"size:20;not null;default:'NEW';index" json:"status"`
	StoreID       uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// CheckinCode is the short code shown to the customer after a storefront
// lead is captured: the last six characters of the ID, uppercased. Display
// convenience only, not a security token.
func (l *Lead) CheckinCode() string {
	id := l.ID.String()
	return strings.ToUpper(id[len(id)-6:])
}
