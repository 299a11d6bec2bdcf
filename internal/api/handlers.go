package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"flightdeck/routeview/internal/middleware"
	"flightdeck/routeview/internal/models/dtos"
	"flightdeck/routeview/internal/services"
)

// SearchHandler handles POST /api/search: submits the route search and
// returns the resulting view-state snapshot (panes rendered, default tab
// active, map overlay built).
func SearchHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sessionID := middleware.SessionIDFromContext(r.Context())

		var req dtos.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, "Invalid search request body")
			return
		}

		snapshot, err := svc.Search(r.Context(), sessionID, req)
		if err != nil {
			// Transport and validation failures recover locally: the view
			// state is untouched and the user can retry.
			respondError(w, initTime, http.StatusBadGateway, "Route search failed: "+err.Error())
			return
		}

		respondSuccess(w, initTime, "Search completed", snapshot)
	}
}

// StateHandler handles GET /api/state: the current snapshot for this
// session, no mutation.
func StateHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sessionID := middleware.SessionIDFromContext(r.Context())

		respondSuccess(w, initTime, "Current view state", svc.State(sessionID))
	}
}

// TabHandler handles POST /api/tabs/{criterion}: switches the active tab
// and returns the snapshot with the redrawn overlay. Pane content is not
// re-rendered.
func TabHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sessionID := middleware.SessionIDFromContext(r.Context())

		criterion := chi.URLParam(r, "criterion")
		if criterion == "" {
			respondError(w, initTime, http.StatusBadRequest, "Missing criterion")
			return
		}

		respondSuccess(w, initTime, "Tab selected", svc.SelectTab(sessionID, criterion))
	}
}

// MapOverlayHandler handles GET /api/map: the active tab's marker/polyline
// layer for the map widget.
func MapOverlayHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sessionID := middleware.SessionIDFromContext(r.Context())

		snapshot := svc.State(sessionID)
		respondSuccess(w, initTime, "Current map overlay", snapshot.Overlay)
	}
}

// PanelOpenHandler handles POST /api/panel/open: shows the conflict report
// panel.
func PanelOpenHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sessionID := middleware.SessionIDFromContext(r.Context())

		respondSuccess(w, initTime, "Conflict panel opened", svc.OpenPanel(sessionID))
	}
}

// PanelCloseHandler handles POST /api/panel/close: hides the conflict
// report panel, returning to the results when any are present.
func PanelCloseHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sessionID := middleware.SessionIDFromContext(r.Context())

		respondSuccess(w, initTime, "Conflict panel closed", svc.ClosePanel(sessionID))
	}
}

// ConflictReportHandler handles GET /api/collision-report: proxies the
// schedule-wide conflict report from the validator backend.
func ConflictReportHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		report, err := svc.ConflictReport(r.Context())
		if err != nil {
			respondError(w, initTime, http.StatusBadGateway, "Conflict report fetch failed: "+err.Error())
			return
		}

		respondSuccess(w, initTime, "Conflict report", report)
	}
}
