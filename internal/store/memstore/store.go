// Package memstore implements the entity repository in process memory. It is
// the reference Storage implementation: state lives for the lifetime of the
// process and is discarded on shutdown.
package memstore

import (
	"context"
	"time"

	"hopeworks/internal/domain"
)

// Compile-time contract assertion.
var _ domain.Storage = (*Store)(nil)

// Store holds one collection per entity kind. Construct a fresh instance per
// process (or per test); there is no package-level state.
type Store struct {
	programs     *collection[domain.Program]
	donations    *collection[domain.Donation]
	volunteers   *collection[domain.Volunteer]
	internships  *collection[domain.Internship]
	partnerships *collection[domain.Partnership]
	contacts     *collection[domain.Contact]
	events       *collection[domain.Event]
	newsletter   *collection[domain.Newsletter]

	now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		programs:     newCollection[domain.Program](),
		donations:    newCollection[domain.Donation](),
		volunteers:   newCollection[domain.Volunteer](),
		internships:  newCollection[domain.Internship](),
		partnerships: newCollection[domain.Partnership](),
		contacts:     newCollection[domain.Contact](),
		events:       newCollection[domain.Event](),
		newsletter:   newCollection[domain.Newsletter](),
		now:          time.Now,
	}
}

// Programs

func (s *Store) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	return s.programs.list(func(p domain.Program) bool { return p.IsActive }), nil
}

func (s *Store) GetProgram(ctx context.Context, id int) (*domain.Program, error) {
	p, ok := s.programs.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *Store) CreateProgram(ctx context.Context, in domain.NewProgram) (*domain.Program, error) {
	p := s.programs.insert(func(id int) domain.Program {
		return domain.Program{
			ID:            id,
			Title:         in.Title,
			Description:   in.Description,
			Category:      in.Category,
			ImageURL:      in.ImageURL,
			TargetNumber:  in.TargetNumber,
			CurrentNumber: in.CurrentNumber,
			IsActive:      in.IsActive,
			CreatedAt:     s.now(),
		}
	})
	return &p, nil
}

func (s *Store) UpdateProgramProgress(ctx context.Context, id, currentNumber int) (*domain.Program, error) {
	p, ok := s.programs.update(id, func(p domain.Program) domain.Program {
		p.CurrentNumber = currentNumber
		return p
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Donations

func (s *Store) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	return s.donations.list(nil), nil
}

func (s *Store) GetDonation(ctx context.Context, id int) (*domain.Donation, error) {
	d, ok := s.donations.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (s *Store) CreateDonation(ctx context.Context, in domain.NewDonation) (*domain.Donation, error) {
	d := s.donations.insert(func(id int) domain.Donation {
		return domain.Donation{
			ID:            id,
			FullName:      in.FullName,
			Email:         in.Email,
			Phone:         in.Phone,
			Amount:        in.Amount,
			DonationType:  in.DonationType,
			PaymentMethod: in.PaymentMethod,
			ProgramID:     in.ProgramID,
			Status:        domain.DonationStatusPending,
			PANNumber:     in.PANNumber,
			Message:       in.Message,
			CreatedAt:     s.now(),
		}
	})
	return &d, nil
}

func (s *Store) UpdateDonationStatus(ctx context.Context, id int, status string) (*domain.Donation, error) {
	d, ok := s.donations.update(id, func(d domain.Donation) domain.Donation {
		d.Status = status
		return d
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

// Volunteers

func (s *Store) ListVolunteers(ctx context.Context) ([]domain.Volunteer, error) {
	return s.volunteers.list(nil), nil
}

func (s *Store) CreateVolunteer(ctx context.Context, in domain.NewVolunteer) (*domain.Volunteer, error) {
	v := s.volunteers.insert(func(id int) domain.Volunteer {
		return domain.Volunteer{
			ID:           id,
			FullName:     in.FullName,
			Email:        in.Email,
			Phone:        in.Phone,
			InterestArea: in.InterestArea,
			Availability: in.Availability,
			Skills:       in.Skills,
			Status:       domain.ReviewStatusPending,
			CreatedAt:    s.now(),
		}
	})
	return &v, nil
}

func (s *Store) UpdateVolunteerStatus(ctx context.Context, id int, status string) (*domain.Volunteer, error) {
	v, ok := s.volunteers.update(id, func(v domain.Volunteer) domain.Volunteer {
		v.Status = status
		return v
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

// Internships

func (s *Store) ListInternships(ctx context.Context) ([]domain.Internship, error) {
	return s.internships.list(nil), nil
}

func (s *Store) CreateInternship(ctx context.Context, in domain.NewInternship) (*domain.Internship, error) {
	i := s.internships.insert(func(id int) domain.Internship {
		return domain.Internship{
			ID:             id,
			FullName:       in.FullName,
			Email:          in.Email,
			University:     in.University,
			InternshipType: in.InternshipType,
			ResumeURL:      nil,
			Status:         domain.ReviewStatusPending,
			CreatedAt:      s.now(),
		}
	})
	return &i, nil
}

func (s *Store) UpdateInternshipStatus(ctx context.Context, id int, status string) (*domain.Internship, error) {
	i, ok := s.internships.update(id, func(i domain.Internship) domain.Internship {
		i.Status = status
		return i
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &i, nil
}

// Partnerships

func (s *Store) ListPartnerships(ctx context.Context) ([]domain.Partnership, error) {
	return s.partnerships.list(nil), nil
}

func (s *Store) CreatePartnership(ctx context.Context, in domain.NewPartnership) (*domain.Partnership, error) {
	p := s.partnerships.insert(func(id int) domain.Partnership {
		return domain.Partnership{
			ID:              id,
			CompanyName:     in.CompanyName,
			ContactPerson:   in.ContactPerson,
			Email:           in.Email,
			PartnershipType: in.PartnershipType,
			Description:     in.Description,
			Status:          domain.ReviewStatusPending,
			CreatedAt:       s.now(),
		}
	})
	return &p, nil
}

func (s *Store) UpdatePartnershipStatus(ctx context.Context, id int, status string) (*domain.Partnership, error) {
	p, ok := s.partnerships.update(id, func(p domain.Partnership) domain.Partnership {
		p.Status = status
		return p
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Contacts

func (s *Store) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.list(nil), nil
}

func (s *Store) CreateContact(ctx context.Context, in domain.NewContact) (*domain.Contact, error) {
	c := s.contacts.insert(func(id int) domain.Contact {
		return domain.Contact{
			ID:                  id,
			FirstName:           in.FirstName,
			LastName:            in.LastName,
			Email:               in.Email,
			Phone:               in.Phone,
			InquiryType:         in.InquiryType,
			Message:             in.Message,
			SubscribeNewsletter: in.SubscribeNewsletter,
			Status:              domain.ContactStatusNew,
			CreatedAt:           s.now(),
		}
	})
	return &c, nil
}

func (s *Store) UpdateContactStatus(ctx context.Context, id int, status string) (*domain.Contact, error) {
	c, ok := s.contacts.update(id, func(c domain.Contact) domain.Contact {
		c.Status = status
		return c
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// Events

func (s *Store) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	now := s.now()
	switch filter {
	case domain.EventsUpcoming:
		return s.events.list(func(e domain.Event) bool {
			return e.EventDate.After(now) || e.EventType == domain.EventTypeUpcoming
		}), nil
	case domain.EventsPast:
		return s.events.list(func(e domain.Event) bool {
			return !e.EventDate.After(now) || e.EventType == domain.EventTypePast
		}), nil
	default:
		return s.events.list(nil), nil
	}
}

func (s *Store) CreateEvent(ctx context.Context, in domain.NewEvent) (*domain.Event, error) {
	e := s.events.insert(func(id int) domain.Event {
		return domain.Event{
			ID:                   id,
			Title:                in.Title,
			Description:          in.Description,
			EventDate:            in.EventDate,
			Location:             in.Location,
			ImageURL:             in.ImageURL,
			EventType:            in.EventType,
			RegistrationRequired: in.RegistrationRequired,
			CreatedAt:            s.now(),
		}
	})
	return &e, nil
}

// Newsletter

func (s *Store) ListNewsletterSubscribers(ctx context.Context) ([]domain.Newsletter, error) {
	return s.newsletter.list(func(n domain.Newsletter) bool {
		return n.Status == domain.NewsletterStatusActive
	}), nil
}

func (s *Store) SubscribeNewsletter(ctx context.Context, email string) (*domain.Newsletter, error) {
	// Reactivate an existing record for this email instead of creating a
	// duplicate; an already-active subscription is returned unchanged.
	n, _ := s.newsletter.findOrInsert(
		func(n domain.Newsletter) bool { return n.Email == email },
		func(n domain.Newsletter) domain.Newsletter {
			n.Status = domain.NewsletterStatusActive
			return n
		},
		func(id int) domain.Newsletter {
			return domain.Newsletter{
				ID:        id,
				Email:     email,
				Status:    domain.NewsletterStatusActive,
				CreatedAt: s.now(),
			}
		},
	)
	return &n, nil
}

func (s *Store) UnsubscribeNewsletter(ctx context.Context, email string) (*domain.Newsletter, error) {
	n, ok := s.newsletter.findUpdate(
		func(n domain.Newsletter) bool { return n.Email == email },
		func(n domain.Newsletter) domain.Newsletter {
			n.Status = domain.NewsletterStatusUnsubscribed
			return n
		},
	)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &n, nil
}

// Stats

func (s *Store) AggregateStats(ctx context.Context) (*domain.Stats, error) {
	childrenHelped := 0
	for _, p := range s.programs.list(nil) {
		childrenHelped += p.CurrentNumber
	}
	completed := len(s.donations.list(func(d domain.Donation) bool {
		return d.Status == domain.DonationStatusCompleted
	}))
	return &domain.Stats{
		ChildrenHelped:  childrenHelped,
		TotalVolunteers: s.volunteers.count(),
		TotalDonations:  completed,
	}, nil
}
