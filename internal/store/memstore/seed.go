package memstore

import (
	"context"
	"fmt"
	"time"

	"hopeworks/internal/domain"
)

// Seed loads the sample programs and events shown on a fresh install. It is
// intended for an empty store right after New.
func (s *Store) Seed(ctx context.Context) error {
	programs := []domain.NewProgram{
		{
			Title:         "Quality Education",
			Description:   "Providing foundational literacy, numeracy, and life skills education through innovative teaching methods and technology integration.",
			Category:      domain.CategoryEducation,
			ImageURL:      "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			TargetNumber:  1000,
			CurrentNumber: 750,
			IsActive:      true,
		},
		{
			Title:         "Healthcare Access",
			Description:   "Regular health checkups, vaccination drives, nutrition programs, and emergency medical assistance for children and families.",
			Category:      domain.CategoryHealthcare,
			ImageURL:      "https://images.unsplash.com/photo-1582750433449-648ed127bb54?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			TargetNumber:  2000,
			CurrentNumber: 1650,
			IsActive:      true,
		},
		{
			Title:         "Nutrition Support",
			Description:   "Daily nutritious meals, nutrition education, and feeding programs to address malnutrition and support healthy growth.",
			Category:      domain.CategoryNutrition,
			ImageURL:      "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			TargetNumber:  800,
			CurrentNumber: 720,
			IsActive:      true,
		},
	}
	for _, p := range programs {
		if _, err := s.CreateProgram(ctx, p); err != nil {
			return fmt.Errorf("seed program %q: %w", p.Title, err)
		}
	}

	events := []domain.NewEvent{
		{
			Title:                "Annual Hope Gala",
			Description:          "Join us for an evening of inspiration, entertainment, and fundraising for our education programs.",
			EventDate:            time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC),
			Location:             "Grand Ballroom, Mumbai",
			ImageURL:             "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			EventType:            domain.EventTypeUpcoming,
			RegistrationRequired: true,
		},
		{
			Title:                "Community Health Camp",
			Description:          "Free health checkups, vaccinations, and health education for families in Dharavi.",
			EventDate:            time.Date(2024, time.March, 22, 9, 0, 0, 0, time.UTC),
			Location:             "Dharavi Community Center",
			ImageURL:             "https://images.unsplash.com/photo-1582750433449-648ed127bb54?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			EventType:            domain.EventTypeUpcoming,
			RegistrationRequired: false,
		},
	}
	for _, e := range events {
		if _, err := s.CreateEvent(ctx, e); err != nil {
			return fmt.Errorf("seed event %q: %w", e.Title, err)
		}
	}
	return nil
}
