package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"hopeworks/internal/http/handlers"
	"hopeworks/internal/middleware"
)

// NewRouter wires every route. Form submission posts share a per-IP rate
// limit so a single client cannot flood the intake collections.
func NewRouter(app *handlers.App) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
		middleware.CORS(app.Cfg.CORSAllowedOrigins),
	)

	submitLimit := middleware.RateLimit(app.Cfg.RateLimitPerMin, time.Minute)

	r.Get("/healthz", app.Health)
	r.Method(stdhttp.MethodGet, "/metrics", app.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/programs", func(r chi.Router) {
			r.Get("/", app.ProgramsList)
			r.Get("/{id}", app.ProgramsGet)
			r.Patch("/{id}/progress", app.ProgramsUpdateProgress)
		})

		r.Route("/donations", func(r chi.Router) {
			r.With(submitLimit).Post("/", app.DonationsCreate)
			r.Get("/", app.DonationsList)
			r.Patch("/{id}/status", app.DonationsUpdateStatus)
		})

		r.Route("/volunteers", func(r chi.Router) {
			r.With(submitLimit).Post("/", app.VolunteersCreate)
			r.Get("/", app.VolunteersList)
			r.Patch("/{id}/status", app.VolunteersUpdateStatus)
		})

		r.Route("/internships", func(r chi.Router) {
			r.With(submitLimit).Post("/", app.InternshipsCreate)
			r.Get("/", app.InternshipsList)
			r.Patch("/{id}/status", app.InternshipsUpdateStatus)
		})

		r.Route("/partnerships", func(r chi.Router) {
			r.With(submitLimit).Post("/", app.PartnershipsCreate)
			r.Get("/", app.PartnershipsList)
			r.Patch("/{id}/status", app.PartnershipsUpdateStatus)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.With(submitLimit).Post("/", app.ContactsCreate)
			r.Get("/", app.ContactsList)
			r.Patch("/{id}/status", app.ContactsUpdateStatus)
		})

		r.Get("/events", app.EventsList)

		r.Route("/newsletter", func(r chi.Router) {
			r.With(submitLimit).Post("/", app.NewsletterSubscribe)
			r.Get("/", app.NewsletterList)
			r.Delete("/{email}", app.NewsletterUnsubscribe)
		})

		r.Get("/stats", app.StatsSummary)
	})

	return r
}
