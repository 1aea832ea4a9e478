package dto

import "github.com/vitartas/leadtrack/internal/models"

type CreateLeadRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Value         string `json:"value"`
}

type PublicLeadRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

// PublicLeadResponse carries the check-in code shown to the customer.
type PublicLeadResponse struct {
	Success bool   `json:"success"`
	QRCode  string `json:"qr_code"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

// LeadWithStore is one row of the cross-tenant admin board.
type LeadWithStore struct {
	models.Lead
	StoreName string `json:"store_name"`
}

// DashboardResponse aggregates the owner dashboard numbers. Monetary values
// are integer cents.
type DashboardResponse struct {
	LeadsThisMonth        int           `json:"leads_this_month"`
	ConfirmedVisits       int           `json:"confirmed_visits"`
	ConversionRate        float64       `json:"conversion_rate"`
	TotalInvestedCents    int64         `json:"total_invested_cents"`
	AvgCostPerLeadCents   int64         `json:"avg_cost_per_lead_cents"`
	AvailableVehicleCount int64         `json:"available_vehicle_count"`
	RecentLeads           []models.Lead `json:"recent_leads"`
}
