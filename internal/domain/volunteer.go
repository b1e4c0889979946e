package domain

import "time"

// Review lifecycle shared by volunteer, internship and partnership intake.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Volunteer is a sign-up submitted through the volunteer form.
type Volunteer struct {
	ID           int       `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	InterestArea string    `json:"interestArea"`
	Availability string    `json:"availability"`
	Skills       *string   `json:"skills"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewVolunteer carries caller-supplied volunteer fields.
type NewVolunteer struct {
	FullName     string
	Email        string
	Phone        string
	InterestArea string
	Availability string
	Skills       *string
}
