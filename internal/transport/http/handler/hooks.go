package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-otp-api/internal/application/notify"
)

// HooksHandler receives identity-provider webhooks. The account-created hook
// is fire-and-forget: the provider gets a 202 as soon as the event parses,
// and notification failures never propagate back — account creation must not
// be blocked by mail delivery.
type HooksHandler struct {
	notifier notify.Service
}

func NewHooksHandler(notifier notify.Service) *HooksHandler {
	return &HooksHandler{notifier: notifier}
}

type accountCreatedEvent struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

func (h *HooksHandler) AccountCreated(w http.ResponseWriter, r *http.Request) {
	var evt accountCreatedEvent
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if evt.Email == "" {
		// Accounts without an email (e.g. phone-only signups) are ignored.
		writeJSON(w, http.StatusAccepted, MessageEnvelope{Message: "ignored"})
		return
	}
	// Detach from the request context so delivery survives the 202.
	go h.notifier.SendWelcome(context.WithoutCancel(r.Context()), evt.Email, evt.DisplayName)
	writeJSON(w, http.StatusAccepted, MessageEnvelope{Message: "accepted"})
}
