package domain

import "time"

// Newsletter subscription lifecycle. Unsubscribing keeps the record; the
// email stays unique across active and unsubscribed entries.
const (
	NewsletterStatusActive       = "active"
	NewsletterStatusUnsubscribed = "unsubscribed"
)

// Newsletter is a single email subscription record.
type Newsletter struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
