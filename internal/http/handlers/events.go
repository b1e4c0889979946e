package handlers

import (
	"net/http"

	"hopeworks/internal/domain"
)

// EventsList returns events, optionally narrowed with ?type=upcoming|past.
// Any other value falls back to the full listing.
func (a *App) EventsList(w http.ResponseWriter, r *http.Request) {
	filter := domain.EventsAll
	switch r.URL.Query().Get("type") {
	case "upcoming":
		filter = domain.EventsUpcoming
	case "past":
		filter = domain.EventsPast
	}
	events, err := a.Store.ListEvents(r.Context(), filter)
	if err != nil {
		a.storeError(w, err, "events")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": events})
}
