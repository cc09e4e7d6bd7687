package handler

import (
	"encoding/json"
	"net/http"

	"chroma-store/internal/model"
	"chroma-store/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Place handles POST /place-order requests.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid order payload", h.logger)
		return
	}

	if _, err := h.service.Place(r.Context(), &req); err != nil {
		writeDomainError(w, err, "Internal Server Error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Order received and saved successfully"}, h.logger)
}

// List handles GET /orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error", h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders, h.logger)
}
