package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

type ShellHandler struct {
	service interfaces.ShellService
	logger  logger.Logger
}

func NewShellHandler(service interfaces.ShellService, logger logger.Logger) *ShellHandler {
	return &ShellHandler{service: service, logger: logger}
}

func (h *ShellHandler) State(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	state, err := h.service.State(r.Context(), sess)
	if err != nil {
		h.logger.Error("shell_error", "Failed to load shell state", "", nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, state)
}

type switchTabRequest struct {
	Tab domain.Tab `json:"tab"`
}

func (h *ShellHandler) SwitchTab(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req switchTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state, err := h.service.SwitchTab(r.Context(), sess, req.Tab)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			respondError(w, http.StatusBadRequest, ve.Reason)
			return
		}
		h.logger.Error("shell_error", "Failed to switch tab", "", nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (h *ShellHandler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	dark, err := h.service.ToggleDarkMode(r.Context())
	if err != nil {
		h.logger.Error("shell_error", "Failed to toggle dark mode", "", nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"dark_mode": dark})
}
