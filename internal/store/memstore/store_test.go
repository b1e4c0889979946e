package memstore

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"hopeworks/internal/domain"
)

func newDonation(name, email string) domain.NewDonation {
	return domain.NewDonation{
		FullName:      name,
		Email:         email,
		Amount:        "500",
		DonationType:  domain.DonationOneTime,
		PaymentMethod: "upi",
	}
}

func TestCreateDonationAssignsIDStatusAndCreatedAt(t *testing.T) {
	s := New()
	ctx := context.Background()

	before := time.Now()
	d, err := s.CreateDonation(ctx, newDonation("A", "a@x.com"))
	if err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}
	if d.ID != 1 {
		t.Fatalf("first id on a fresh store: got %d, want 1", d.ID)
	}
	if d.Status != domain.DonationStatusPending {
		t.Fatalf("default status: got %q, want %q", d.Status, domain.DonationStatusPending)
	}
	if d.CreatedAt.Before(before) {
		t.Fatalf("createdAt %v earlier than call time %v", d.CreatedAt, before)
	}

	d2, err := s.CreateDonation(ctx, newDonation("B", "b@x.com"))
	if err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}
	if d2.ID <= d.ID {
		t.Fatalf("ids must increase monotonically: got %d after %d", d2.ID, d.ID)
	}
}

func TestIDCountersArePerKind(t *testing.T) {
	s := New()
	ctx := context.Background()

	d, err := s.CreateDonation(ctx, newDonation("A", "a@x.com"))
	if err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}
	v, err := s.CreateVolunteer(ctx, domain.NewVolunteer{
		FullName: "V", Email: "v@x.com", Phone: "123",
		InterestArea: "teaching", Availability: "weekends",
	})
	if err != nil {
		t.Fatalf("CreateVolunteer: %v", err)
	}
	if d.ID != 1 || v.ID != 1 {
		t.Fatalf("kind-local counters expected, got donation=%d volunteer=%d", d.ID, v.ID)
	}
}

func TestGetAfterCreateReturnsEqualEntity(t *testing.T) {
	s := New()
	ctx := context.Background()

	phone := "9876543210"
	in := newDonation("A", "a@x.com")
	in.Phone = &phone
	created, err := s.CreateDonation(ctx, in)
	if err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}
	got, err := s.GetDonation(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetDonation: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("GetDonation mismatch:\n got %+v\nwant %+v", got, created)
	}
}

func TestGetByIDMissingReturnsNotFound(t *testing.T) {
	s := New()
	if _, err := s.GetDonation(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetProgram(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListProgramsExcludesInactive(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.CreateProgram(ctx, domain.NewProgram{Title: "Active", IsActive: true}); err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}
	inactive, err := s.CreateProgram(ctx, domain.NewProgram{Title: "Dormant", IsActive: false})
	if err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}

	programs, err := s.ListPrograms(ctx)
	if err != nil {
		t.Fatalf("ListPrograms: %v", err)
	}
	if len(programs) != 1 || programs[0].Title != "Active" {
		t.Fatalf("expected only the active program, got %+v", programs)
	}

	// Inactive programs stay reachable by id.
	if _, err := s.GetProgram(ctx, inactive.ID); err != nil {
		t.Fatalf("GetProgram(inactive): %v", err)
	}
}

func TestUpdateProgramProgressChangesOnlyCurrentNumber(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateProgram(ctx, domain.NewProgram{
		Title:         "Quality Education",
		Description:   "desc",
		Category:      domain.CategoryEducation,
		ImageURL:      "https://example.com/img.jpg",
		TargetNumber:  1000,
		CurrentNumber: 750,
		IsActive:      true,
	})
	if err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}

	updated, err := s.UpdateProgramProgress(ctx, created.ID, 900)
	if err != nil {
		t.Fatalf("UpdateProgramProgress: %v", err)
	}
	if updated.CurrentNumber != 900 {
		t.Fatalf("currentNumber: got %d, want 900", updated.CurrentNumber)
	}

	want := *created
	want.CurrentNumber = 900
	got, err := s.GetProgram(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProgram: %v", err)
	}
	if !reflect.DeepEqual(*got, want) {
		t.Fatalf("fields other than currentNumber changed:\n got %+v\nwant %+v", *got, want)
	}
}

func TestUpdateProgressOvershootIsAllowed(t *testing.T) {
	s := New()
	ctx := context.Background()

	p, err := s.CreateProgram(ctx, domain.NewProgram{Title: "T", TargetNumber: 100, IsActive: true})
	if err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}
	got, err := s.UpdateProgramProgress(ctx, p.ID, 150)
	if err != nil {
		t.Fatalf("UpdateProgramProgress: %v", err)
	}
	if got.CurrentNumber != 150 {
		t.Fatalf("overshoot must not be clamped: got %d", got.CurrentNumber)
	}
}

func TestUpdateStatusMissingIDLeavesCollectionUnchanged(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateDonation(ctx, newDonation("A", "a@x.com"))
	if err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}

	if _, err := s.UpdateDonationStatus(ctx, 999, domain.DonationStatusCompleted); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := s.ListDonations(ctx)
	if err != nil {
		t.Fatalf("ListDonations: %v", err)
	}
	if len(all) != 1 || !reflect.DeepEqual(all[0], *created) {
		t.Fatalf("collection changed after failed update: %+v", all)
	}
}

func TestUpdateDonationStatusAcceptsAnyString(t *testing.T) {
	s := New()
	ctx := context.Background()

	d, err := s.CreateDonation(ctx, newDonation("A", "a@x.com"))
	if err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}
	got, err := s.UpdateDonationStatus(ctx, d.ID, "refund-review")
	if err != nil {
		t.Fatalf("UpdateDonationStatus: %v", err)
	}
	if got.Status != "refund-review" {
		t.Fatalf("status: got %q", got.Status)
	}
	if got.FullName != d.FullName || !got.CreatedAt.Equal(d.CreatedAt) {
		t.Fatalf("non-status fields changed: %+v", got)
	}
}

func TestInternshipResumeURLNilAtCreation(t *testing.T) {
	s := New()
	i, err := s.CreateInternship(context.Background(), domain.NewInternship{
		FullName: "I", Email: "i@x.com", University: "U", InternshipType: "research",
	})
	if err != nil {
		t.Fatalf("CreateInternship: %v", err)
	}
	if i.ResumeURL != nil {
		t.Fatalf("resumeUrl must be nil at creation, got %v", *i.ResumeURL)
	}
	if i.Status != domain.ReviewStatusPending {
		t.Fatalf("status: got %q", i.Status)
	}
}

func TestContactDefaultsToNewStatus(t *testing.T) {
	s := New()
	c, err := s.CreateContact(context.Background(), domain.NewContact{
		FirstName: "F", LastName: "L", Email: "f@x.com",
		InquiryType: "general", Message: "hello",
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if c.Status != domain.ContactStatusNew {
		t.Fatalf("status: got %q, want %q", c.Status, domain.ContactStatusNew)
	}
	if c.SubscribeNewsletter {
		t.Fatalf("subscribeNewsletter must default to false")
	}
}

func TestListEventsFilters(t *testing.T) {
	s := New()
	ctx := context.Background()

	past := domain.NewEvent{Title: "Old Camp", EventDate: time.Now().Add(-48 * time.Hour), EventType: domain.EventTypePast}
	future := domain.NewEvent{Title: "Gala", EventDate: time.Now().Add(48 * time.Hour), EventType: domain.EventTypePast}
	flagged := domain.NewEvent{Title: "Flagged", EventDate: time.Now().Add(-48 * time.Hour), EventType: domain.EventTypeUpcoming}
	for _, e := range []domain.NewEvent{past, future, flagged} {
		if _, err := s.CreateEvent(ctx, e); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	all, err := s.ListEvents(ctx, domain.EventsAll)
	if err != nil {
		t.Fatalf("ListEvents(all): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all events: got %d, want 3", len(all))
	}

	upcoming, err := s.ListEvents(ctx, domain.EventsUpcoming)
	if err != nil {
		t.Fatalf("ListEvents(upcoming): %v", err)
	}
	// Future date qualifies regardless of declared type, and so does the
	// "upcoming" marker regardless of date.
	if len(upcoming) != 2 {
		t.Fatalf("upcoming events: got %d, want 2 (%+v)", len(upcoming), upcoming)
	}

	pastEvents, err := s.ListEvents(ctx, domain.EventsPast)
	if err != nil {
		t.Fatalf("ListEvents(past): %v", err)
	}
	if len(pastEvents) != 2 {
		t.Fatalf("past events: got %d, want 2 (%+v)", len(pastEvents), pastEvents)
	}
}

func TestNewsletterSubscribeIsIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.SubscribeNewsletter(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("SubscribeNewsletter: %v", err)
	}
	second, err := s.SubscribeNewsletter(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("SubscribeNewsletter: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("duplicate subscribe created a new record: %d vs %d", second.ID, first.ID)
	}

	subs, err := s.ListNewsletterSubscribers(ctx)
	if err != nil {
		t.Fatalf("ListNewsletterSubscribers: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected a single subscription, got %d", len(subs))
	}
}

func TestNewsletterResubscribeReusesRecord(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.SubscribeNewsletter(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("SubscribeNewsletter: %v", err)
	}
	un, err := s.UnsubscribeNewsletter(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("UnsubscribeNewsletter: %v", err)
	}
	if un.Status != domain.NewsletterStatusUnsubscribed {
		t.Fatalf("status after unsubscribe: got %q", un.Status)
	}

	subs, err := s.ListNewsletterSubscribers(ctx)
	if err != nil {
		t.Fatalf("ListNewsletterSubscribers: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("unsubscribed records must not be listed, got %+v", subs)
	}

	again, err := s.SubscribeNewsletter(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("SubscribeNewsletter: %v", err)
	}
	if again.ID != first.ID {
		t.Fatalf("resubscribe must reuse the original id: got %d, want %d", again.ID, first.ID)
	}
	if again.Status != domain.NewsletterStatusActive {
		t.Fatalf("status after resubscribe: got %q", again.Status)
	}
}

func TestUnsubscribeUnknownEmailIsNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.SubscribeNewsletter(ctx, "a@b.com"); err != nil {
		t.Fatalf("SubscribeNewsletter: %v", err)
	}
	if _, err := s.UnsubscribeNewsletter(ctx, "nobody@x.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	subs, err := s.ListNewsletterSubscribers(ctx)
	if err != nil {
		t.Fatalf("ListNewsletterSubscribers: %v", err)
	}
	if len(subs) != 1 || subs[0].Status != domain.NewsletterStatusActive {
		t.Fatalf("state changed after failed unsubscribe: %+v", subs)
	}
}

func TestAggregateStatsSumsAllProgramsIncludingInactive(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.CreateProgram(ctx, domain.NewProgram{Title: "A", CurrentNumber: 100, IsActive: true}); err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}
	if _, err := s.CreateProgram(ctx, domain.NewProgram{Title: "B", CurrentNumber: 250, IsActive: false}); err != nil {
		t.Fatalf("CreateProgram: %v", err)
	}

	d, err := s.CreateDonation(ctx, newDonation("A", "a@x.com"))
	if err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}
	if _, err := s.CreateDonation(ctx, newDonation("B", "b@x.com")); err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}
	if _, err := s.UpdateDonationStatus(ctx, d.ID, domain.DonationStatusCompleted); err != nil {
		t.Fatalf("UpdateDonationStatus: %v", err)
	}

	if _, err := s.CreateVolunteer(ctx, domain.NewVolunteer{
		FullName: "V", Email: "v@x.com", Phone: "1", InterestArea: "x", Availability: "y",
	}); err != nil {
		t.Fatalf("CreateVolunteer: %v", err)
	}

	stats, err := s.AggregateStats(ctx)
	if err != nil {
		t.Fatalf("AggregateStats: %v", err)
	}
	if stats.ChildrenHelped != 350 {
		t.Fatalf("childrenHelped: got %d, want 350", stats.ChildrenHelped)
	}
	if stats.TotalVolunteers != 1 {
		t.Fatalf("totalVolunteers: got %d, want 1", stats.TotalVolunteers)
	}
	if stats.TotalDonations != 1 {
		t.Fatalf("totalDonations counts completed only: got %d, want 1", stats.TotalDonations)
	}
}

func TestSeedLoadsSamplePrograms(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	programs, err := s.ListPrograms(ctx)
	if err != nil {
		t.Fatalf("ListPrograms: %v", err)
	}
	if len(programs) != 3 {
		t.Fatalf("seeded programs: got %d, want 3", len(programs))
	}
	if programs[0].ID != 1 || programs[0].Title != "Quality Education" {
		t.Fatalf("unexpected first seeded program: %+v", programs[0])
	}

	events, err := s.ListEvents(ctx, domain.EventsAll)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("seeded events: got %d, want 2", len(events))
	}

	stats, err := s.AggregateStats(ctx)
	if err != nil {
		t.Fatalf("AggregateStats: %v", err)
	}
	if want := 750 + 1650 + 720; stats.ChildrenHelped != want {
		t.Fatalf("childrenHelped after seed: got %d, want %d", stats.ChildrenHelped, want)
	}
}

func TestConcurrentCreatesKeepIDsUnique(t *testing.T) {
	s := New()
	ctx := context.Background()

	const n = 64
	done := make(chan int, n)
	for i := 0; i < n; i++ {
		go func() {
			d, err := s.CreateDonation(ctx, newDonation("A", "a@x.com"))
			if err != nil {
				done <- 0
				return
			}
			done <- d.ID
		}()
	}
	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		id := <-done
		if id == 0 {
			t.Fatalf("concurrent create failed")
		}
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	all, err := s.ListDonations(ctx)
	if err != nil {
		t.Fatalf("ListDonations: %v", err)
	}
	if len(all) != n {
		t.Fatalf("stored donations: got %d, want %d", len(all), n)
	}
}
