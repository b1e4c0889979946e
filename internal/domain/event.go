package domain

import "time"

// Declared event categories. The list filter also considers EventDate, so a
// record marked "upcoming" ages out of the upcoming list naturally.
const (
	EventTypeUpcoming = "upcoming"
	EventTypePast     = "past"
)

// EventFilter selects which events a listing returns.
type EventFilter string

const (
	EventsAll      EventFilter = "all"
	EventsUpcoming EventFilter = "upcoming"
	EventsPast     EventFilter = "past"
)

// Event is a published community event.
type Event struct {
	ID                   int       `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	EventDate            time.Time `json:"eventDate"`
	Location             string    `json:"location"`
	ImageURL             string    `json:"imageUrl"`
	EventType            string    `json:"eventType"`
	RegistrationRequired bool      `json:"registrationRequired"`
	CreatedAt            time.Time `json:"createdAt"`
}

// NewEvent carries caller-supplied event fields.
type NewEvent struct {
	Title                string
	Description          string
	EventDate            time.Time
	Location             string
	ImageURL             string
	EventType            string
	RegistrationRequired bool
}
