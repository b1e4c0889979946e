package handlers

import (
	"encoding/json"
	"net/http"
)

// ProgramsList returns the active programs in insertion order.
func (a *App) ProgramsList(w http.ResponseWriter, r *http.Request) {
	programs, err := a.Store.ListPrograms(r.Context())
	if err != nil {
		a.storeError(w, err, "programs")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": programs})
}

// ProgramsGet resolves one program by id, inactive ones included.
func (a *App) ProgramsGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid program id")
		return
	}
	program, err := a.Store.GetProgram(r.Context(), id)
	if err != nil {
		a.storeError(w, err, "program")
		return
	}
	a.json(w, http.StatusOK, program)
}

type progressRequest struct {
	CurrentNumber *int `json:"currentNumber"`
}

// ProgramsUpdateProgress replaces a program's currentNumber. Overshoot past
// targetNumber is accepted; clamping is a display concern.
func (a *App) ProgramsUpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid program id")
		return
	}
	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CurrentNumber == nil || *req.CurrentNumber < 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "currentNumber must be a non-negative integer")
		return
	}
	program, err := a.Store.UpdateProgramProgress(r.Context(), id, *req.CurrentNumber)
	if err != nil {
		a.storeError(w, err, "program")
		return
	}
	a.json(w, http.StatusOK, program)
}
