package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"flightdeck/routeview/internal/providers"
)

// ServiceStatus is one dependency's health entry.
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HealthCheckResponse is the health endpoint payload.
type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]ServiceStatus `json:"services"`
}

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(fetcher providers.ConstantsFetcher, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]ServiceStatus)

		// Check the route-search backend with a cheap constants fetch
		backendStatus := "ok"
		backendDetails := "Search backend reachable"
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if _, _, err := fetcher.GetConstants(ctx); err != nil {
			backendStatus = "down"
			backendDetails = err.Error()
		}
		services["search_backend"] = ServiceStatus{
			Status:  backendStatus,
			Details: backendDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
