// Package api is the HTTP layer over the parsing engine and the checkout
// boundary.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	custommiddleware "github.com/craftledger/etsyprofit/internal/api/middleware"
	"github.com/craftledger/etsyprofit/internal/checkout"
	"github.com/craftledger/etsyprofit/internal/serverconfig"
)

// NewRouter creates and configures the HTTP router
func NewRouter(checkoutClient *checkout.Client, cfg *serverconfig.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	h := NewHandler(checkoutClient, cfg.Upload.MaxBytes)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", h.CreateReport)
			r.Get("/demo", h.DemoReport)
		})

		r.Post("/checkout", h.CreateCheckout)
	})

	return r
}
