package handlers

import (
	"encoding/json"
	"net/http"

	"hopeworks/internal/domain"
)

type partnershipRequest struct {
	CompanyName     string  `json:"companyName"`
	ContactPerson   string  `json:"contactPerson"`
	Email           string  `json:"email"`
	PartnershipType string  `json:"partnershipType"`
	Description     *string `json:"description"`
}

func (req *partnershipRequest) validate() string {
	if req.CompanyName == "" {
		return "companyName is required"
	}
	if req.ContactPerson == "" {
		return "contactPerson is required"
	}
	if !validEmail(req.Email) {
		return "a valid email is required"
	}
	if req.PartnershipType == "" {
		return "partnershipType is required"
	}
	return ""
}

func (a *App) PartnershipsCreate(w http.ResponseWriter, r *http.Request) {
	var req partnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}
	partnership, err := a.Store.CreatePartnership(r.Context(), domain.NewPartnership{
		CompanyName:     req.CompanyName,
		ContactPerson:   req.ContactPerson,
		Email:           req.Email,
		PartnershipType: req.PartnershipType,
		Description:     req.Description,
	})
	if err != nil {
		a.storeError(w, err, "partnership")
		return
	}
	a.Metrics.Submissions.WithLabelValues("partnership").Inc()
	a.json(w, http.StatusCreated, partnership)
}

func (a *App) PartnershipsList(w http.ResponseWriter, r *http.Request) {
	partnerships, err := a.Store.ListPartnerships(r.Context())
	if err != nil {
		a.storeError(w, err, "partnerships")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": partnerships})
}

func (a *App) PartnershipsUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid partnership id")
		return
	}
	status, ok := a.decodeStatus(w, r)
	if !ok {
		return
	}
	partnership, err := a.Store.UpdatePartnershipStatus(r.Context(), id, status)
	if err != nil {
		a.storeError(w, err, "partnership")
		return
	}
	a.json(w, http.StatusOK, partnership)
}
