package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-otp-api/internal/application/otp"
	"github.com/go-otp-api/internal/pkg/validate"
)

// PasswordResetHandler handles the three-step password-reset flow:
// request a code, verify it, then confirm with the new password.
type PasswordResetHandler struct {
	svc otp.Service
}

func NewPasswordResetHandler(svc otp.Service) *PasswordResetHandler {
	return &PasswordResetHandler{svc: svc}
}

func (h *PasswordResetHandler) Action(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "request":
		var req otp.PasswordResetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := h.svc.RequestPasswordReset(r.Context(), req); err != nil {
			httpError(w, err)
			return
		}
		writeSuccess(w, "reset code sent")
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
		if err := h.svc.VerifyPasswordResetCode(r.Context(), req); err != nil {
			httpError(w, err)
			return
		}
		writeSuccess(w, "code valid")
	case "confirm":
		var req otp.ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err := h.svc.ResetPassword(r.Context(), req); err != nil {
			httpError(w, err)
			return
		}
		writeSuccess(w, "password updated")
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}
