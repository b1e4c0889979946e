package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hopeworks/internal/domain"
)

type donationRequest struct {
	FullName      string  `json:"fullName"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	Amount        string  `json:"amount"`
	DonationType  string  `json:"donationType"`
	PaymentMethod string  `json:"paymentMethod"`
	ProgramID     *int    `json:"programId"`
	PANNumber     *string `json:"panNumber"`
	Message       *string `json:"message"`
}

func (req *donationRequest) validate() string {
	if req.FullName == "" {
		return "fullName is required"
	}
	if !validEmail(req.Email) {
		return "a valid email is required"
	}
	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil || amount <= 0 {
		return "amount must be a positive number"
	}
	if !oneOf(req.DonationType, domain.DonationOneTime, domain.DonationMonthly) {
		return "donationType must be one-time or monthly"
	}
	if req.PaymentMethod == "" {
		return "paymentMethod is required"
	}
	return ""
}

// DonationsCreate records a donation. The programId reference is stored as
// given; nothing checks that the program exists.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}
	donation, err := a.Store.CreateDonation(r.Context(), domain.NewDonation{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Amount:        req.Amount,
		DonationType:  req.DonationType,
		PaymentMethod: req.PaymentMethod,
		ProgramID:     req.ProgramID,
		PANNumber:     req.PANNumber,
		Message:       req.Message,
	})
	if err != nil {
		a.storeError(w, err, "donation")
		return
	}
	a.Metrics.Submissions.WithLabelValues("donation").Inc()
	a.json(w, http.StatusCreated, donation)
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Store.ListDonations(r.Context())
	if err != nil {
		a.storeError(w, err, "donations")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": donations})
}

func (a *App) DonationsUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid donation id")
		return
	}
	status, ok := a.decodeStatus(w, r)
	if !ok {
		return
	}
	donation, err := a.Store.UpdateDonationStatus(r.Context(), id, status)
	if err != nil {
		a.storeError(w, err, "donation")
		return
	}
	a.json(w, http.StatusOK, donation)
}
