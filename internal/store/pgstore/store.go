// Package pgstore implements the entity repository on PostgreSQL via pgx.
// It carries the same contract as memstore: kind-local serial ids, createdAt
// assigned at insert, unconstrained status strings, newsletter idempotency.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hopeworks/internal/domain"
)

var _ domain.Storage = (*Store)(nil)

// Store wraps a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New returns a store backed by the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema applies the table definitions. Idempotent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// Programs

const programCols = `id, title, description, category, image_url, target_number, current_number, is_active, created_at`

func scanProgram(row pgx.Row) (*domain.Program, error) {
	var p domain.Program
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.ImageURL,
		&p.TargetNumber, &p.CurrentNumber, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *Store) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	rows, err := s.pool.Query(ctx, `
SELECT `+programCols+`
FROM programs
WHERE is_active
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (s *Store) GetProgram(ctx context.Context, id int) (*domain.Program, error) {
	return scanProgram(s.pool.QueryRow(ctx, `
SELECT `+programCols+`
FROM programs
WHERE id = $1;
`, id))
}

func (s *Store) CreateProgram(ctx context.Context, in domain.NewProgram) (*domain.Program, error) {
	return scanProgram(s.pool.QueryRow(ctx, `
INSERT INTO programs (title, description, category, image_url, target_number, current_number, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+programCols+`;
`, in.Title, in.Description, in.Category, in.ImageURL, in.TargetNumber, in.CurrentNumber, in.IsActive))
}

func (s *Store) UpdateProgramProgress(ctx context.Context, id, currentNumber int) (*domain.Program, error) {
	return scanProgram(s.pool.QueryRow(ctx, `
UPDATE programs
SET current_number = $2
WHERE id = $1
RETURNING `+programCols+`;
`, id, currentNumber))
}

// Donations

const donationCols = `id, full_name, email, phone, amount::text, donation_type, payment_method, program_id, status, pan_number, message, created_at`

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(&d.ID, &d.FullName, &d.Email, &d.Phone, &d.Amount, &d.DonationType,
		&d.PaymentMethod, &d.ProgramID, &d.Status, &d.PANNumber, &d.Message, &d.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (s *Store) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	rows, err := s.pool.Query(ctx, `
SELECT `+donationCols+`
FROM donations
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	return items, rows.Err()
}

func (s *Store) GetDonation(ctx context.Context, id int) (*domain.Donation, error) {
	return scanDonation(s.pool.QueryRow(ctx, `
SELECT `+donationCols+`
FROM donations
WHERE id = $1;
`, id))
}

func (s *Store) CreateDonation(ctx context.Context, in domain.NewDonation) (*domain.Donation, error) {
	return scanDonation(s.pool.QueryRow(ctx, `
INSERT INTO donations (full_name, email, phone, amount, donation_type, payment_method, program_id, pan_number, message)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9)
RETURNING `+donationCols+`;
`, in.FullName, in.Email, in.Phone, in.Amount, in.DonationType, in.PaymentMethod, in.ProgramID, in.PANNumber, in.Message))
}

func (s *Store) UpdateDonationStatus(ctx context.Context, id int, status string) (*domain.Donation, error) {
	return scanDonation(s.pool.QueryRow(ctx, `
UPDATE donations
SET status = $2
WHERE id = $1
RETURNING `+donationCols+`;
`, id, status))
}

// Volunteers

const volunteerCols = `id, full_name, email, phone, interest_area, availability, skills, status, created_at`

func scanVolunteer(row pgx.Row) (*domain.Volunteer, error) {
	var v domain.Volunteer
	err := row.Scan(&v.ID, &v.FullName, &v.Email, &v.Phone, &v.InterestArea,
		&v.Availability, &v.Skills, &v.Status, &v.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

func (s *Store) ListVolunteers(ctx context.Context) ([]domain.Volunteer, error) {
	rows, err := s.pool.Query(ctx, `
SELECT `+volunteerCols+`
FROM volunteers
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	return items, rows.Err()
}

func (s *Store) CreateVolunteer(ctx context.Context, in domain.NewVolunteer) (*domain.Volunteer, error) {
	return scanVolunteer(s.pool.QueryRow(ctx, `
INSERT INTO volunteers (full_name, email, phone, interest_area, availability, skills)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+volunteerCols+`;
`, in.FullName, in.Email, in.Phone, in.InterestArea, in.Availability, in.Skills))
}

func (s *Store) UpdateVolunteerStatus(ctx context.Context, id int, status string) (*domain.Volunteer, error) {
	return scanVolunteer(s.pool.QueryRow(ctx, `
UPDATE volunteers
SET status = $2
WHERE id = $1
RETURNING `+volunteerCols+`;
`, id, status))
}

// Internships

const internshipCols = `id, full_name, email, university, internship_type, resume_url, status, created_at`

func scanInternship(row pgx.Row) (*domain.Internship, error) {
	var i domain.Internship
	err := row.Scan(&i.ID, &i.FullName, &i.Email, &i.University, &i.InternshipType,
		&i.ResumeURL, &i.Status, &i.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &i, nil
}

func (s *Store) ListInternships(ctx context.Context) ([]domain.Internship, error) {
	rows, err := s.pool.Query(ctx, `
SELECT `+internshipCols+`
FROM internships
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Internship
	for rows.Next() {
		i, err := scanInternship(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

func (s *Store) CreateInternship(ctx context.Context, in domain.NewInternship) (*domain.Internship, error) {
	return scanInternship(s.pool.QueryRow(ctx, `
INSERT INTO internships (full_name, email, university, internship_type)
VALUES ($1, $2, $3, $4)
RETURNING `+internshipCols+`;
`, in.FullName, in.Email, in.University, in.InternshipType))
}

func (s *Store) UpdateInternshipStatus(ctx context.Context, id int, status string) (*domain.Internship, error) {
	return scanInternship(s.pool.QueryRow(ctx, `
UPDATE internships
SET status = $2
WHERE id = $1
RETURNING `+internshipCols+`;
`, id, status))
}

// Partnerships

const partnershipCols = `id, company_name, contact_person, email, partnership_type, description, status, created_at`

func scanPartnership(row pgx.Row) (*domain.Partnership, error) {
	var p domain.Partnership
	err := row.Scan(&p.ID, &p.CompanyName, &p.ContactPerson, &p.Email,
		&p.PartnershipType, &p.Description, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *Store) ListPartnerships(ctx context.Context) ([]domain.Partnership, error) {
	rows, err := s.pool.Query(ctx, `
SELECT `+partnershipCols+`
FROM partnerships
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Partnership
	for rows.Next() {
		p, err := scanPartnership(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (s *Store) CreatePartnership(ctx context.Context, in domain.NewPartnership) (*domain.Partnership, error) {
	return scanPartnership(s.pool.QueryRow(ctx, `
INSERT INTO partnerships (company_name, contact_person, email, partnership_type, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING `+partnershipCols+`;
`, in.CompanyName, in.ContactPerson, in.Email, in.PartnershipType, in.Description))
}

func (s *Store) UpdatePartnershipStatus(ctx context.Context, id int, status string) (*domain.Partnership, error) {
	return scanPartnership(s.pool.QueryRow(ctx, `
UPDATE partnerships
SET status = $2
WHERE id = $1
RETURNING `+partnershipCols+`;
`, id, status))
}

// Contacts

const contactCols = `id, first_name, last_name, email, phone, inquiry_type, message, subscribe_newsletter, status, created_at`

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.InquiryType, &c.Message, &c.SubscribeNewsletter, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (s *Store) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	rows, err := s.pool.Query(ctx, `
SELECT `+contactCols+`
FROM contacts
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (s *Store) CreateContact(ctx context.Context, in domain.NewContact) (*domain.Contact, error) {
	return scanContact(s.pool.QueryRow(ctx, `
INSERT INTO contacts (first_name, last_name, email, phone, inquiry_type, message, subscribe_newsletter)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+contactCols+`;
`, in.FirstName, in.LastName, in.Email, in.Phone, in.InquiryType, in.Message, in.SubscribeNewsletter))
}

func (s *Store) UpdateContactStatus(ctx context.Context, id int, status string) (*domain.Contact, error) {
	return scanContact(s.pool.QueryRow(ctx, `
UPDATE contacts
SET status = $2
WHERE id = $1
RETURNING `+contactCols+`;
`, id, status))
}

// Events

const eventCols = `id, title, description, event_date, location, image_url, event_type, registration_required, created_at`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Location,
		&e.ImageURL, &e.EventType, &e.RegistrationRequired, &e.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (s *Store) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	query := `
SELECT ` + eventCols + `
FROM events
ORDER BY id;
`
	switch filter {
	case domain.EventsUpcoming:
		query = `
SELECT ` + eventCols + `
FROM events
WHERE event_date > now() OR event_type = 'upcoming'
ORDER BY id;
`
	case domain.EventsPast:
		query = `
SELECT ` + eventCols + `
FROM events
WHERE event_date <= now() OR event_type = 'past'
ORDER BY id;
`
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (s *Store) CreateEvent(ctx context.Context, in domain.NewEvent) (*domain.Event, error) {
	return scanEvent(s.pool.QueryRow(ctx, `
INSERT INTO events (title, description, event_date, location, image_url, event_type, registration_required)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+eventCols+`;
`, in.Title, in.Description, in.EventDate, in.Location, in.ImageURL, in.EventType, in.RegistrationRequired))
}

// Newsletter

const newsletterCols = `id, email, status, created_at`

func scanNewsletter(row pgx.Row) (*domain.Newsletter, error) {
	var n domain.Newsletter
	if err := row.Scan(&n.ID, &n.Email, &n.Status, &n.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &n, nil
}

func (s *Store) ListNewsletterSubscribers(ctx context.Context) ([]domain.Newsletter, error) {
	rows, err := s.pool.Query(ctx, `
SELECT `+newsletterCols+`
FROM newsletter
WHERE status = 'active'
ORDER BY id;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Newsletter
	for rows.Next() {
		n, err := scanNewsletter(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

// SubscribeNewsletter upserts on the unique email: a known address keeps its
// id and created_at and is flipped back to active.
func (s *Store) SubscribeNewsletter(ctx context.Context, email string) (*domain.Newsletter, error) {
	return scanNewsletter(s.pool.QueryRow(ctx, `
INSERT INTO newsletter (email, status)
VALUES ($1, 'active')
ON CONFLICT (email) DO UPDATE SET status = 'active'
RETURNING `+newsletterCols+`;
`, email))
}

func (s *Store) UnsubscribeNewsletter(ctx context.Context, email string) (*domain.Newsletter, error) {
	return scanNewsletter(s.pool.QueryRow(ctx, `
UPDATE newsletter
SET status = 'unsubscribed'
WHERE email = $1
RETURNING `+newsletterCols+`;
`, email))
}

// Stats

func (s *Store) AggregateStats(ctx context.Context) (*domain.Stats, error) {
	var st domain.Stats
	err := s.pool.QueryRow(ctx, `
SELECT
	COALESCE((SELECT SUM(current_number) FROM programs), 0),
	(SELECT COUNT(*) FROM volunteers),
	(SELECT COUNT(*) FROM donations WHERE status = 'completed');
`).Scan(&st.ChildrenHelped, &st.TotalVolunteers, &st.TotalDonations)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
