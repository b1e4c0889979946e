package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"hopeworks/internal/http/handlers"
	"hopeworks/internal/http/httpapi"
	"hopeworks/internal/infra"
	"hopeworks/internal/store/memstore"
)

// newTestServer wires a fresh in-memory store behind the real router so
// tests exercise routing, validation and storage together.
func newTestServer(t *testing.T) (*memstore.Store, http.Handler) {
	t.Helper()
	store := memstore.New()
	cfg := &infra.Config{
		AppEnv:          "test",
		RateLimitPerMin: 1000,
		CitiesCovered:   12,
		YearsOperation:  8,
	}
	app := handlers.NewApp(store, zerolog.Nop(), cfg)
	return store, httpapi.NewRouter(app)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
