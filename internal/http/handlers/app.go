package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"hopeworks/internal/domain"
	"hopeworks/internal/infra"
	"hopeworks/internal/metrics"
)

// App bundles the dependencies shared by all handlers.
type App struct {
	Store   domain.Storage
	Log     zerolog.Logger
	Cfg     *infra.Config
	Metrics *metrics.Metrics
}

// NewApp builds the handler container.
func NewApp(store domain.Storage, log zerolog.Logger, cfg *infra.Config) *App {
	return &App{Store: store, Log: log, Cfg: cfg, Metrics: metrics.New()}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, slug, msg string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": slug, "message": msg}})
}

// storeError maps storage failures onto the response contract: absent ids
// become 404, everything else a generic 500.
func (a *App) storeError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", what+" not found")
		return
	}
	a.Log.Error().Err(err).Msgf("storage failure: %s", what)
	a.error(w, http.StatusInternalServerError, "internal", "storage failure")
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

type statusRequest struct {
	Status string `json:"status"`
}

// decodeStatus reads a status-update body. Any non-empty string is accepted;
// transition legality is deliberately unconstrained.
func (a *App) decodeStatus(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "status is required")
		return "", false
	}
	return req.Status, true
}
