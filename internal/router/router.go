package router

import (
	"net/http"

	"chroma-store/internal/handler"
	"chroma-store/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	authHandler *handler.AuthHandler,
	uploadHandler *handler.UploadHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware in order: Recovery -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Image uploads; both paths serve the same handler
	r.Post("/upload-image", uploadHandler.Upload)
	r.Post("/upload-product-image", uploadHandler.Upload)

	// Catalogue
	r.Post("/upload", productHandler.Create)
	r.Get("/products", productHandler.List)
	r.Delete("/products/{productId}", productHandler.Delete)

	// Orders
	r.Post("/place-order", orderHandler.Place)
	r.Get("/orders", orderHandler.List)

	// Admin
	r.Post("/register", authHandler.Register)
	r.Post("/admin/login", authHandler.Login)

	return r
}
