package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: logger}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var cmd interfaces.CreateOrderCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.Create(r.Context(), sess, cmd)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			respondError(w, http.StatusBadRequest, ve.Reason)
			return
		}
		h.logger.Error("order_create_error", "Failed to create order", "", nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	view, err := h.service.Dashboard(r.Context(), sess)
	if err != nil {
		h.logger.Error("dashboard_error", "Failed to build dashboard", "", nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

type statusChangeRequest struct {
	Status domain.Status `json:"status"`
}

// UpdateStatus answers 204 for admin and non-admin sessions alike: a
// non-admin call is silently ignored, not rejected.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req statusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.service.UpdateStatus(r.Context(), sess, r.PathValue("id"), req.Status)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			respondError(w, http.StatusBadRequest, ve.Reason)
			return
		}
		h.logger.Error("status_change_error", "Failed to update status", r.PathValue("id"), nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	// The history tab is not rendered for staff at all.
	if !sess.IsAdmin() {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	view, err := h.service.History(r.Context(), sess)
	if err != nil {
		h.logger.Error("history_error", "Failed to build history", "", nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *OrderHandler) StatusHistory(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	changes, err := h.service.StatusHistory(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrHistoryUnavailable) {
			respondError(w, http.StatusNotFound, "Status history not available")
			return
		}
		h.logger.Error("status_history_error", "Failed to load status history", r.PathValue("id"), nil, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, changes)
}
