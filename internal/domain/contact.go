package domain

import "time"

// Contact message lifecycle.
const (
	ContactStatusNew       = "new"
	ContactStatusResponded = "responded"
	ContactStatusClosed    = "closed"
)

// Contact is a message submitted through the contact form.
type Contact struct {
	ID                  int       `json:"id"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	Email               string    `json:"email"`
	Phone               *string   `json:"phone"`
	InquiryType         string    `json:"inquiryType"`
	Message             string    `json:"message"`
	SubscribeNewsletter bool      `json:"subscribeNewsletter"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

// NewContact carries caller-supplied contact fields.
type NewContact struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               *string
	InquiryType         string
	Message             string
	SubscribeNewsletter bool
}
