package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// invalidCredentialsMessage is the user-facing login failure text. It is
// the same for a wrong username and a wrong password.
const invalidCredentialsMessage = "Invalid credentials, try again"

type AuthHandler struct {
	auth   interfaces.AuthService
	shell  interfaces.ShellService
	logger logger.Logger
}

func NewAuthHandler(auth interfaces.AuthService, shell interfaces.ShellService, logger logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, shell: shell, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess, err := h.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}
		h.logger.Error("login_error", "Login failed", "", nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, sess)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if SessionFrom(r.Context()) == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	if err := h.auth.Logout(r.Context()); err != nil {
		h.logger.Error("logout_error", "Logout failed", "", nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	// A re-login must never resume on a hidden tab.
	if err := h.shell.ResetTab(r.Context()); err != nil {
		h.logger.Error("logout_error", "Failed to reset active tab", "", nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	respondJSON(w, http.StatusOK, sess)
}
