package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hopeworks/internal/domain"
)

func TestEventsListTypeFilter(t *testing.T) {
	store, h := newTestServer(t)
	ctx := context.Background()

	events := []domain.NewEvent{
		{Title: "Old Camp", EventDate: time.Now().Add(-72 * time.Hour), EventType: domain.EventTypePast},
		{Title: "Gala", EventDate: time.Now().Add(72 * time.Hour), EventType: domain.EventTypeUpcoming},
	}
	for _, e := range events {
		if _, err := store.CreateEvent(ctx, e); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	cases := []struct {
		path string
		want []string
	}{
		{"/api/events", []string{"Old Camp", "Gala"}},
		{"/api/events?type=upcoming", []string{"Gala"}},
		{"/api/events?type=past", []string{"Old Camp"}},
		{"/api/events?type=bogus", []string{"Old Camp", "Gala"}},
	}
	for _, tc := range cases {
		rr := doJSON(t, h, http.MethodGet, tc.path, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: got %d", tc.path, rr.Code)
		}
		var list struct {
			Items []struct {
				Title string `json:"title"`
			} `json:"items"`
		}
		decode(t, rr, &list)
		if len(list.Items) != len(tc.want) {
			t.Fatalf("%s: got %d events, want %d", tc.path, len(list.Items), len(tc.want))
		}
		for i, title := range tc.want {
			if list.Items[i].Title != title {
				t.Fatalf("%s: event %d is %q, want %q", tc.path, i, list.Items[i].Title, title)
			}
		}
	}
}
