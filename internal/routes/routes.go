package routes

import (
	"log/slog"

	"github.com/durangezer/portfolio-api/internal/auth"
	"github.com/durangezer/portfolio-api/internal/config"
	"github.com/durangezer/portfolio-api/internal/handlers"
	"github.com/durangezer/portfolio-api/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all application routes under /api/v1
func RegisterRoutes(
	router chi.Router,
	cfg *config.Config,
	logger *slog.Logger,
	adminHandler *handlers.AdminHandler,
	translationsHandler *handlers.TranslationsHandler,
	contactHandler *handlers.ContactHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	chatHandler *handlers.ChatHandler,
	tokenManager *auth.TokenManager,
) {
	loginLimit := middleware.RateLimitConfig{RequestsPerMinute: cfg.RateLimit.LoginPerMinute}
	publicLimit := middleware.RateLimitConfig{RequestsPerMinute: cfg.RateLimit.PublicPerMinute}

	router.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(publicLimit))

			r.Post("/contact", contactHandler.Submit)
			r.Post("/analytics/pageview", analyticsHandler.RecordPageView)
			r.Post("/chat", chatHandler.Chat)
			r.Get("/chat/suggestions", chatHandler.GetSuggestions)
		})

		// Login gets a tighter per-IP limit on top of the attempt guard
		r.With(middleware.RateLimitByIP(loginLimit)).Post("/admin/login", adminHandler.Login)

		// Admin routes - valid token required
		r.Group(func(r chi.Router) {
			r.Use(auth.AdminOnly(tokenManager, logger))

			r.Post("/admin/logout", adminHandler.Logout)

			r.Get("/admin/content", adminHandler.GetContent)
			r.Put("/admin/content", adminHandler.UpdateContent)
			r.Put("/admin/content/section/{section}", adminHandler.UpdateSection)
			r.Post("/admin/content/array-item", adminHandler.UpsertArrayItem)
			r.Delete("/admin/content/array-item", adminHandler.DeleteArrayItem)

			r.Get("/translations/{lang}", translationsHandler.GetTranslations)
			r.Put("/translations/{lang}", translationsHandler.UpdateTranslations)
			r.Put("/translations/{lang}/section/{section}", translationsHandler.UpdateTranslationSection)
			r.Put("/translations/{lang}/field", translationsHandler.UpdateTranslationField)

			r.Get("/analytics/stats", analyticsHandler.GetStats)
			r.Get("/contact/messages", contactHandler.ListMessages)
		})
	})
}
