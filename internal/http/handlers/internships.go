package handlers

import (
	"encoding/json"
	"net/http"

	"hopeworks/internal/domain"
)

type internshipRequest struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	University     string `json:"university"`
	InternshipType string `json:"internshipType"`
}

func (req *internshipRequest) validate() string {
	if req.FullName == "" {
		return "fullName is required"
	}
	if !validEmail(req.Email) {
		return "a valid email is required"
	}
	if req.University == "" {
		return "university is required"
	}
	if req.InternshipType == "" {
		return "internshipType is required"
	}
	return ""
}

func (a *App) InternshipsCreate(w http.ResponseWriter, r *http.Request) {
	var req internshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}
	internship, err := a.Store.CreateInternship(r.Context(), domain.NewInternship{
		FullName:       req.FullName,
		Email:          req.Email,
		University:     req.University,
		InternshipType: req.InternshipType,
	})
	if err != nil {
		a.storeError(w, err, "internship")
		return
	}
	a.Metrics.Submissions.WithLabelValues("internship").Inc()
	a.json(w, http.StatusCreated, internship)
}

func (a *App) InternshipsList(w http.ResponseWriter, r *http.Request) {
	internships, err := a.Store.ListInternships(r.Context())
	if err != nil {
		a.storeError(w, err, "internships")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": internships})
}

func (a *App) InternshipsUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid internship id")
		return
	}
	status, ok := a.decodeStatus(w, r)
	if !ok {
		return
	}
	internship, err := a.Store.UpdateInternshipStatus(r.Context(), id, status)
	if err != nil {
		a.storeError(w, err, "internship")
		return
	}
	a.json(w, http.StatusOK, internship)
}
