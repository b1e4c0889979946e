package domain

import "time"

// Program categories accepted by the intake forms.
const (
	CategoryEducation  = "education"
	CategoryHealthcare = "healthcare"
	CategoryNutrition  = "nutrition"
	CategoryEmergency  = "emergency"
	CategorySkills     = "skills"
	CategoryCommunity  = "community"
)

// Program is a running initiative with a measurable beneficiary target.
// CurrentNumber may exceed TargetNumber; overshoot is a display concern.
type Program struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"imageUrl"`
	TargetNumber  int       `json:"targetNumber"`
	CurrentNumber int       `json:"currentNumber"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewProgram carries the fields a caller supplies when creating a Program.
type NewProgram struct {
	Title         string
	Description   string
	Category      string
	ImageURL      string
	TargetNumber  int
	CurrentNumber int
	IsActive      bool
}
