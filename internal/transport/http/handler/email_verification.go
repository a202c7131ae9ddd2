package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-otp-api/internal/application/otp"
	"github.com/go-otp-api/internal/pkg/validate"
)

// EmailVerificationHandler handles the email-verification flow:
// request an activation code, then verify it.
type EmailVerificationHandler struct {
	svc otp.Service
}

func NewEmailVerificationHandler(svc otp.Service) *EmailVerificationHandler {
	return &EmailVerificationHandler{svc: svc}
}

func (h *EmailVerificationHandler) Action(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "request":
		var req otp.EmailVerificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := h.svc.RequestEmailVerification(r.Context(), req); err != nil {
			httpError(w, err)
			return
		}
		writeSuccess(w, "verification code sent")
	case "verify":
		var req otp.VerifyCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err := h.svc.VerifyEmail(r.Context(), req); err != nil {
			httpError(w, err)
			return
		}
		writeSuccess(w, "email verified")
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}
