package domain

import "context"

// Stats aggregates figures derived from stored entities. Presentation
// constants (cities covered, years of operation) live in configuration and
// are merged by the request layer.
type Stats struct {
	ChildrenHelped  int `json:"childrenHelped"`
	TotalVolunteers int `json:"totalVolunteers"`
	TotalDonations  int `json:"totalDonations"`
}

// Storage is the entity repository contract. Implementations assign ids
// (kind-local, starting at 1, never reused) and createdAt timestamps; callers
// never supply either. Absence is signaled with ErrNotFound. Status updates
// accept any string; no transition graph is enforced.
type Storage interface {
	// Programs. ListPrograms returns active programs only; GetProgram
	// resolves inactive ones too.
	ListPrograms(ctx context.Context) ([]Program, error)
	GetProgram(ctx context.Context, id int) (*Program, error)
	CreateProgram(ctx context.Context, in NewProgram) (*Program, error)
	UpdateProgramProgress(ctx context.Context, id, currentNumber int) (*Program, error)

	// Donations.
	ListDonations(ctx context.Context) ([]Donation, error)
	GetDonation(ctx context.Context, id int) (*Donation, error)
	CreateDonation(ctx context.Context, in NewDonation) (*Donation, error)
	UpdateDonationStatus(ctx context.Context, id int, status string) (*Donation, error)

	// Volunteers.
	ListVolunteers(ctx context.Context) ([]Volunteer, error)
	CreateVolunteer(ctx context.Context, in NewVolunteer) (*Volunteer, error)
	UpdateVolunteerStatus(ctx context.Context, id int, status string) (*Volunteer, error)

	// Internships.
	ListInternships(ctx context.Context) ([]Internship, error)
	CreateInternship(ctx context.Context, in NewInternship) (*Internship, error)
	UpdateInternshipStatus(ctx context.Context, id int, status string) (*Internship, error)

	// Partnerships.
	ListPartnerships(ctx context.Context) ([]Partnership, error)
	CreatePartnership(ctx context.Context, in NewPartnership) (*Partnership, error)
	UpdatePartnershipStatus(ctx context.Context, id int, status string) (*Partnership, error)

	// Contacts.
	ListContacts(ctx context.Context) ([]Contact, error)
	CreateContact(ctx context.Context, in NewContact) (*Contact, error)
	UpdateContactStatus(ctx context.Context, id int, status string) (*Contact, error)

	// Events.
	ListEvents(ctx context.Context, filter EventFilter) ([]Event, error)
	CreateEvent(ctx context.Context, in NewEvent) (*Event, error)

	// Newsletter. Subscribe is idempotent per email: an active subscription
	// is returned as-is and an unsubscribed one is reactivated under its
	// original id.
	ListNewsletterSubscribers(ctx context.Context) ([]Newsletter, error)
	SubscribeNewsletter(ctx context.Context, email string) (*Newsletter, error)
	UnsubscribeNewsletter(ctx context.Context, email string) (*Newsletter, error)

	// AggregateStats derives dashboard figures: childrenHelped sums
	// CurrentNumber over every program including inactive ones.
	AggregateStats(ctx context.Context) (*Stats, error)
}
