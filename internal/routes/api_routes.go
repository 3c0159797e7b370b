package routes

import (
	"skyshield/bastion/internal/api"
	"skyshield/bastion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers) {

	r.Route("/api", func(r chi.Router) {
		// Login is rate limited separately from the rest of the API
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitMiddleware)
			r.Post("/login", handlers.Login())
		})

		r.Get("/radars", handlers.ListRadars())

		r.Post("/aircraft/detect", handlers.DetectAircraft())
		r.Get("/aircraft/all", handlers.ListAircraft())

		r.Patch("/threats/{threatID}/override", handlers.OverrideThreat())

		r.Get("/missiles/available", handlers.ListAvailableMissiles())
		r.Post("/missiles/add", handlers.AddMissile())

		r.Post("/interceptions", handlers.CreateInterception())
		r.Get("/incidents/all", handlers.ListIncidents())

		r.Get("/alerts/automated", handlers.ListAlerts())
		r.Post("/alerts/generate-unintercepted-threat-alert", handlers.GenerateAlert())
		r.Patch("/alerts/{alertID}/acknowledge", handlers.AcknowledgeAlert())

		r.Get("/surveillance/summary", handlers.SurveillanceSummary())
		r.Get("/rules", handlers.ListRules())

		// Session-token protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware())
			r.Get("/operators/me", handlers.CurrentOperator())
		})
	})
}
