package handler

import (
	"net/http"

	"chroma-store/internal/imagestore"
	"chroma-store/internal/model"

	"github.com/rs/zerolog"
)

// maxUploadSize bounds the multipart form held in memory.
const maxUploadSize = 10 << 20 // 10 MiB

// UploadResponse is the success envelope for image uploads.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// UploadHandler handles image upload HTTP requests.
type UploadHandler struct {
	store  imagestore.Store
	logger zerolog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store imagestore.Store, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger.With().Str("handler", "upload").Logger(),
	}
}

// Upload handles POST /upload-image and POST /upload-product-image
// requests. The file bytes are passed through to the image store; only
// the returned URL is kept.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrMissingFile.Message, h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrMissingFile.Message, h.logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	url, err := h.store.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("image upload failed")
		writeError(w, http.StatusInternalServerError, model.ErrUploadFailed.Message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{ImageURL: url}, h.logger)
}
