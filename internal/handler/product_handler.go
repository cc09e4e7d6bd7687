package handler

import (
	"encoding/json"
	"net/http"

	"chroma-store/internal/model"
	"chroma-store/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /upload requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product payload", h.logger)
		return
	}

	if _, err := h.service.Create(r.Context(), &req); err != nil {
		writeDomainError(w, err, "Upload failed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product uploaded successfully"}, h.logger)
}

// List handles GET /products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, http.StatusOK, products, h.logger)
}

// Delete handles DELETE /products/{productId} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		// An unparseable ID matches nothing.
		writeError(w, http.StatusNotFound, model.ErrProductNotFound.Message, h.logger)
		return
	}

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "Failed to delete product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"}, h.logger)
}
