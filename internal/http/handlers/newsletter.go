package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type newsletterRequest struct {
	Email string `json:"email"`
}

// NewsletterSubscribe registers an email. The call is idempotent: repeating
// it returns the existing record, and a previously unsubscribed address is
// reactivated under its original id.
func (a *App) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validEmail(req.Email) {
		a.error(w, http.StatusBadRequest, "bad_request", "a valid email is required")
		return
	}
	sub, err := a.Store.SubscribeNewsletter(r.Context(), req.Email)
	if err != nil {
		a.storeError(w, err, "subscription")
		return
	}
	a.Metrics.Submissions.WithLabelValues("newsletter").Inc()
	a.json(w, http.StatusOK, sub)
}

// NewsletterUnsubscribe flips the subscription for {email} to unsubscribed.
// The record is kept; only its status changes.
func (a *App) NewsletterUnsubscribe(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	sub, err := a.Store.UnsubscribeNewsletter(r.Context(), email)
	if err != nil {
		a.storeError(w, err, "subscription")
		return
	}
	a.Metrics.Unsubscribes.Inc()
	a.json(w, http.StatusOK, sub)
}

func (a *App) NewsletterList(w http.ResponseWriter, r *http.Request) {
	subs, err := a.Store.ListNewsletterSubscribers(r.Context())
	if err != nil {
		a.storeError(w, err, "subscriptions")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": subs})
}
