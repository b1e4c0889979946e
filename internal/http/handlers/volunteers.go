package handlers

import (
	"encoding/json"
	"net/http"

	"hopeworks/internal/domain"
)

type volunteerRequest struct {
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	InterestArea string  `json:"interestArea"`
	Availability string  `json:"availability"`
	Skills       *string `json:"skills"`
}

func (req *volunteerRequest) validate() string {
	if req.FullName == "" {
		return "fullName is required"
	}
	if !validEmail(req.Email) {
		return "a valid email is required"
	}
	if req.Phone == "" {
		return "phone is required"
	}
	if req.InterestArea == "" {
		return "interestArea is required"
	}
	if req.Availability == "" {
		return "availability is required"
	}
	return ""
}

func (a *App) VolunteersCreate(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}
	volunteer, err := a.Store.CreateVolunteer(r.Context(), domain.NewVolunteer{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		InterestArea: req.InterestArea,
		Availability: req.Availability,
		Skills:       req.Skills,
	})
	if err != nil {
		a.storeError(w, err, "volunteer")
		return
	}
	a.Metrics.Submissions.WithLabelValues("volunteer").Inc()
	a.json(w, http.StatusCreated, volunteer)
}

func (a *App) VolunteersList(w http.ResponseWriter, r *http.Request) {
	volunteers, err := a.Store.ListVolunteers(r.Context())
	if err != nil {
		a.storeError(w, err, "volunteers")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": volunteers})
}

func (a *App) VolunteersUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid volunteer id")
		return
	}
	status, ok := a.decodeStatus(w, r)
	if !ok {
		return
	}
	volunteer, err := a.Store.UpdateVolunteerStatus(r.Context(), id, status)
	if err != nil {
		a.storeError(w, err, "volunteer")
		return
	}
	a.json(w, http.StatusOK, volunteer)
}
