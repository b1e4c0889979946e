package handlers

import (
	"encoding/json"
	"net/http"

	"hopeworks/internal/domain"
)

type contactRequest struct {
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Email               string  `json:"email"`
	Phone               *string `json:"phone"`
	InquiryType         string  `json:"inquiryType"`
	Message             string  `json:"message"`
	SubscribeNewsletter bool    `json:"subscribeNewsletter"`
}

func (req *contactRequest) validate() string {
	if req.FirstName == "" {
		return "firstName is required"
	}
	if req.LastName == "" {
		return "lastName is required"
	}
	if !validEmail(req.Email) {
		return "a valid email is required"
	}
	if req.InquiryType == "" {
		return "inquiryType is required"
	}
	if req.Message == "" {
		return "message is required"
	}
	return ""
}

// ContactsCreate stores a contact message. When the sender opted into the
// newsletter, a subscription is created as well; a failure there does not
// fail the contact submission.
func (a *App) ContactsCreate(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}
	contact, err := a.Store.CreateContact(r.Context(), domain.NewContact{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		InquiryType:         req.InquiryType,
		Message:             req.Message,
		SubscribeNewsletter: req.SubscribeNewsletter,
	})
	if err != nil {
		a.storeError(w, err, "contact")
		return
	}
	if req.SubscribeNewsletter {
		if _, err := a.Store.SubscribeNewsletter(r.Context(), req.Email); err != nil {
			a.Log.Warn().Err(err).Str("email", req.Email).Msg("newsletter opt-in from contact form failed")
		}
	}
	a.Metrics.Submissions.WithLabelValues("contact").Inc()
	a.json(w, http.StatusCreated, contact)
}

func (a *App) ContactsList(w http.ResponseWriter, r *http.Request) {
	contacts, err := a.Store.ListContacts(r.Context())
	if err != nil {
		a.storeError(w, err, "contacts")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": contacts})
}

func (a *App) ContactsUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid contact id")
		return
	}
	status, ok := a.decodeStatus(w, r)
	if !ok {
		return
	}
	contact, err := a.Store.UpdateContactStatus(r.Context(), id, status)
	if err != nil {
		a.storeError(w, err, "contact")
		return
	}
	a.json(w, http.StatusOK, contact)
}
