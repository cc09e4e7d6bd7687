package handler

import (
	"encoding/json"
	"net/http"

	"chroma-store/internal/model"
	"chroma-store/internal/service"

	"github.com/rs/zerolog"
)

// LoginResponse is the success envelope for admin login.
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// AuthHandler handles admin registration and login HTTP requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid credentials payload", h.logger)
		return
	}

	if _, err := h.service.Register(r.Context(), req.Email, req.Password); err != nil {
		writeDomainError(w, err, "Internal Server Error", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Admin registered successfully"}, h.logger)
}

// Login handles POST /admin/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid credentials payload", h.logger)
		return
	}

	accessToken, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err, "Internal Server Error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Message:     "Admin logged in successfully",
		AccessToken: accessToken,
	}, h.logger)
}
