package dto

import "github.com/google/uuid"

// CreateSellerRequest adds a SELLER to the caller's store. Password is
// optional; when empty the seller gets the default initial password.
type CreateSellerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the super-admin user edit form.
type UpdateUserRequest struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Role    string     `json:"role"`
	StoreID *uuid.UUID `json:"store_id"`
}

// TeamMemberResponse omits credentials from team listings.
type TeamMemberResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
