package routes

import (
	"flightdeck/routeview/internal/ui"

	"github.com/go-chi/chi/v5"
)

// RegisterUIRoutes registers all UI-related routes
func RegisterUIRoutes(r chi.Router, handler *ui.UIHandler) {

	r.Get("/", handler.IndexHandler)

	// HTML fragments loaded into the page shell
	r.Route("/partials", func(partials chi.Router) {
		partials.Get("/results", handler.ResultsPartialHandler)
		partials.Get("/conflicts", handler.ConflictPanelPartialHandler)
	})
}
