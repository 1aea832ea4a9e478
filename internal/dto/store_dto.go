package dto

import (
	"github.com/vitartas/leadtrack/internal/models"
)

// CreateStoreRequest is the admin-initiated store creation form: the store
// and its owner account are created in one transaction.
type CreateStoreRequest struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CNPJ       string `json:"cnpj"`
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
	Password   string `json:"password"`
}

// RegisterStoreRequest is the public self-service signup form. Slug and CNPJ
// are generated server-side.
type RegisterStoreRequest struct {
	StoreName  string `json:"store_name"`
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
	Password   string `json:"password"`
}

// UpdateStoreRequest is the admin edit form: full attribute replacement.
type UpdateStoreRequest struct {
	Name               string `json:"name"`
	Slug               string `json:"slug"`
	CNPJ               string `json:"cnpj"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	PrimaryColor       string `json:"primary_color"`
	Plan               string `json:"plan"`
	SubscriptionActive bool   `json:"subscription_active"`
	OwnerName          string `json:"owner_name"`
}

// StoreSettingsRequest is the owner-facing settings form. Plan and
// subscription state are deliberately absent.
type StoreSettingsRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	PrimaryColor string `json:"primary_color"`
}

// StoreWithCounts is one row of the admin stores listing.
type StoreWithCounts struct {
	models.Store
	UserCount    int64 `json:"user_count"`
	VehicleCount int64 `json:"vehicle_count"`
	LeadCount    int64 `json:"lead_count"`
}

// StorefrontResponse is the public storefront payload: the store plus its
// available vehicles.
type StorefrontResponse struct {
	Store    models.Store     `json:"store"`
	Vehicles []models.Vehicle `json:"vehicles"`
}
