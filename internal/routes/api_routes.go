package routes

import (
	"flightdeck/routeview/internal/api"
	"flightdeck/routeview/internal/services"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the JSON API routes
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, svc *services.SearchService) {

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Post("/search", api.SearchHandler(svc))
		apiRouter.Get("/state", api.StateHandler(svc))
		apiRouter.Get("/map", api.MapOverlayHandler(svc))

		apiRouter.Post("/tabs/{criterion}", api.TabHandler(svc))
		apiRouter.Post("/panel/open", api.PanelOpenHandler(svc))
		apiRouter.Post("/panel/close", api.PanelCloseHandler(svc))

		apiRouter.Get("/collision-report", api.ConflictReportHandler(svc))
	})
}
