package api

import (
	"net/http"

	"github.com/crowdship-app/crowdship-api/internal/api/handlers"
	"github.com/crowdship-app/crowdship-api/internal/api/middleware"
	"github.com/crowdship-app/crowdship-api/internal/config"
	"github.com/crowdship-app/crowdship-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	packageHandler := handlers.NewPackageHandler(services.Package)
	tripHandler := handlers.NewTripHandler(services.Trip)
	paymentHandler := handlers.NewPaymentHandler(services.Payment)

	requireAuth := middleware.Auth(services.Auth)

	// Trip creation is gated unless guest listings are enabled by policy.
	tripCreateAuth := requireAuth
	if cfg.GuestTripListings {
		tripCreateAuth = middleware.OptionalAuth(services.Auth)
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/me", authHandler.Me)
				r.Put("/profile", authHandler.UpdateProfile)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Package routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Route("/packages", func(r chi.Router) {
				r.Post("/", packageHandler.Create)
				r.Get("/", packageHandler.List)
				r.Delete("/{id}", packageHandler.Delete)
			})
		})

		// Trip routes
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", tripHandler.List)
			r.With(tripCreateAuth).Post("/", tripHandler.Create)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Patch("/{id}/status", tripHandler.UpdateStatus)
				r.Delete("/{id}", tripHandler.Delete)
			})
		})

		// Owned-trip listing
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/users/me/trips", tripHandler.ListOwned)
		})

		// Payment method routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Route("/payment-methods", func(r chi.Router) {
				r.Post("/", paymentHandler.Create)
				r.Get("/", paymentHandler.List)
			})
		})
	})

	return r
}
