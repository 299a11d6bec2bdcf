package ui

import (
	"encoding/json"
	"net/http"

	"flightdeck/routeview/internal/logging"
	"flightdeck/routeview/internal/middleware"
	"flightdeck/routeview/internal/models/dtos"
	"flightdeck/routeview/internal/services"
)

// UIHandler manages all UI routes
type UIHandler struct {
	Service *services.SearchService
}

// NewUIHandler creates a new UI handler
func NewUIHandler(svc *services.SearchService) *UIHandler {
	return &UIHandler{Service: svc}
}

// IndexHandler renders the route search page shell. All result content is
// loaded into it as HTML partials.
func (h *UIHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexPage))
}

// ResultsPartialHandler returns the results region for the caller's session
// as an HTML fragment.
func (h *UIHandler) ResultsPartialHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	snapshot := h.Service.State(sessionID)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(BuildResultsPartial(snapshot)))
}

// ConflictPanelPartialHandler returns the schedule-wide collision report as
// an HTML fragment.
func (h *UIHandler) ConflictPanelPartialHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	raw, err := h.Service.ConflictReport(r.Context())
	if err != nil {
		logging.Warn("Conflict panel fetch failed", "error", err.Error())
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(BuildConflictPanel(nil)))
		return
	}

	// The cached value may have gone through a JSON round trip, so renormalize
	// it into the typed report before rendering.
	var report dtos.ConflictReport
	buf, err := json.Marshal(raw)
	if err == nil {
		err = json.Unmarshal(buf, &report)
	}
	if err != nil {
		logging.Warn("Conflict report decode failed", "error", err.Error())
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(BuildConflictPanel(nil)))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(BuildConflictPanel(&report)))
}
