package domain

import "time"

// Internship is an application submitted through the internship form.
// ResumeURL is never set at creation; an admin attaches it later.
type Internship struct {
	ID             int       `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	University     string    `json:"university"`
	InternshipType string    `json:"internshipType"`
	ResumeURL      *string   `json:"resumeUrl"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewInternship carries caller-supplied internship fields.
type NewInternship struct {
	FullName       string
	Email          string
	University     string
	InternshipType string
}
