package domain

import "time"

// Partnership is a corporate partnership inquiry.
type Partnership struct {
	ID              int       `json:"id"`
	CompanyName     string    `json:"companyName"`
	ContactPerson   string    `json:"contactPerson"`
	Email           string    `json:"email"`
	PartnershipType string    `json:"partnershipType"`
	Description     *string   `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewPartnership carries caller-supplied partnership fields.
type NewPartnership struct {
	CompanyName     string
	ContactPerson   string
	Email           string
	PartnershipType string
	Description     *string
}
