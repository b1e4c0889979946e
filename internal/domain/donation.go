package domain

import "time"

// Donation status lifecycle. Transitions are not constrained.
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
)

// Accepted donation schedules.
const (
	DonationOneTime = "one-time"
	DonationMonthly = "monthly"
)

// Donation represents a supporter contribution record. ProgramID is a weak
// reference: it is never validated against the programs collection and may
// dangle.
type Donation struct {
	ID            int       `json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	Amount        string    `json:"amount"`
	DonationType  string    `json:"donationType"`
	PaymentMethod string    `json:"paymentMethod"`
	ProgramID     *int      `json:"programId"`
	Status        string    `json:"status"`
	PANNumber     *string   `json:"panNumber"`
	Message       *string   `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewDonation carries caller-supplied donation fields. Status is assigned by
// the store.
type NewDonation struct {
	FullName      string
	Email         string
	Phone         *string
	Amount        string
	DonationType  string
	PaymentMethod string
	ProgramID     *int
	PANNumber     *string
	Message       *string
}
