package services

import (
	"time"

	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/models"
	"github.com/vitartas/leadtrack/internal/tenant"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats aggregates the owner dashboard numbers for the caller's store:
// current-month lead volume and spend, confirmed visits and conversion.
func (s *DashboardService) Stats(sess *tenant.Session) (*dto.DashboardResponse, error) {
	if sess.StoreID == nil {
		return nil, ErrNoStore
	}

	var leads []models.Lead
	err := s.db.Scopes(tenant.ForStore(*sess.StoreID)).
		Order("created_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var thisMonth []models.Lead
	for _, l := range leads {
		if l.CreatedAt.Month() == now.Month() && l.CreatedAt.Year() == now.Year() {
			thisMonth = append(thisMonth, l)
		}
	}

	visits := 0
	for _, l := range leads {
		if l.Status == models.LeadStatusVisited || l.Status == models.LeadStatusClosedSale {
			visits++
		}
	}

	var invested int64
	for _, l := range thisMonth {
		invested += l.ValueCents
	}

	resp := &dto.DashboardResponse{
		LeadsThisMonth:     len(thisMonth),
		ConfirmedVisits:    visits,
		TotalInvestedCents: invested,
	}
	if len(thisMonth) > 0 {
		resp.ConversionRate = float64(visits) / float64(len(thisMonth)) * 100
		resp.AvgCostPerLeadCents = invested / int64(len(thisMonth))
	}

	s.db.Model(&models.Vehicle{}).
		Scopes(tenant.ForStore(*sess.StoreID)).
		Where("is_available = ?", true).
		Count(&resp.AvailableVehicleCount)

	if len(leads) > 5 {
		resp.RecentLeads = leads[:5]
	} else {
		resp.RecentLeads = leads
	}
	return resp, nil
}
