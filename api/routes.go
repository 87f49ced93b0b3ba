package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes sets up all routes consumed by the web frontend.
// Public reads (profile page, typeahead search) skip authentication;
// everything that mutates goes through the session middleware.
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/profile/{username}", handlers.profileHandler.getProfile())
		r.Get("/profile/{username}/projects", handlers.projectHandler.listProjects())
		r.Get("/users/search", handlers.profileHandler.searchUsers())
	})

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/onboarding", handlers.profileHandler.completeOnboarding())
		r.Put("/profile", handlers.profileHandler.editProfile())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
	})
}
