package routes

import (
	"net/http"
	"time"

	"flightdeck/routeview/internal/api"
	"flightdeck/routeview/internal/logging"
	"flightdeck/routeview/internal/metrics"
	"flightdeck/routeview/internal/middleware"
	"flightdeck/routeview/internal/providers"
	"flightdeck/routeview/internal/services"
	"flightdeck/routeview/internal/ui"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(
	svc *services.SearchService,
	fetcher providers.ConstantsFetcher,
	metricsReg *metrics.MetricsRegistry,
	upSince time.Time,
) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.SessionMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(fetcher, upSince))

	// metrics endpoint
	r.Handle("/metrics", metricsReg.Handler())

	RegisterAPIRoutes(r, svc)
	RegisterUIRoutes(r, ui.NewUIHandler(svc))

	return r
}
