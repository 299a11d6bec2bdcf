package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flightdeck/routeview/internal/common"
	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/logging"
	"flightdeck/routeview/internal/lookup"
	"flightdeck/routeview/internal/metrics"
	"flightdeck/routeview/internal/models/dtos"
	"flightdeck/routeview/internal/providers"
	"flightdeck/routeview/internal/render"
	"flightdeck/routeview/internal/viewstate"
	"flightdeck/routeview/internal/workers"
)

// SearchService drives the result-interpretation pipeline: it submits the
// search, derives and formats the response, feeds the view-state controller,
// and kicks off the best-effort conflict validation.
type SearchService struct {
	Searcher  providers.RouteSearcher
	Validator providers.ConflictValidator
	Lookups   *lookup.Directory
	Store     *viewstate.Store
	Cache     common.CacheInterface
	Metrics   *metrics.MetricsRegistry

	ReportTTL time.Duration

	// enqueue is swappable in tests; defaults to the worker queue.
	enqueue func(workers.ValidationRequest) bool
}

func NewSearchService(
	searcher providers.RouteSearcher,
	validator providers.ConflictValidator,
	lookups *lookup.Directory,
	store *viewstate.Store,
	cache common.CacheInterface,
	reg *metrics.MetricsRegistry,
	reportTTL time.Duration,
) *SearchService {
	return &SearchService{
		Searcher:  searcher,
		Validator: validator,
		Lookups:   lookups,
		Store:     store,
		Cache:     cache,
		Metrics:   reg,
		ReportTTL: reportTTL,
		enqueue:   workers.Enqueue,
	}
}

// Search runs one full search cycle for a session.
func (svc *SearchService) Search(ctx context.Context, sessionID string, req dtos.SearchRequest) (dtos.StateSnapshot, error) {
	initTime := time.Now()

	req.Start = strings.ToUpper(strings.TrimSpace(req.Start))
	req.End = strings.ToUpper(strings.TrimSpace(req.End))
	if req.Start == "" || req.End == "" {
		return svc.Store.Snapshot(sessionID), fmt.Errorf("start and end airports are required")
	}

	// Reset first: the generation bump invalidates any validation still in
	// flight for the previous search.
	snapshot, _ := svc.Store.Dispatch(sessionID, viewstate.SearchStarted{})
	generation := snapshot.Generation

	svc.Lookups.EnsureFresh(ctx)

	results, _, err := svc.Searcher.FindRoutes(ctx, req)
	if err != nil {
		svc.Metrics.SearchesTotal.WithLabelValues("error").Inc()
		logging.WithSearch(sessionID, generation).Warnw("Route search failed",
			"start", req.Start,
			"end", req.End,
			"error", err.Error(),
		)
		return snapshot, err
	}

	panes := render.BuildPanes(results, req.Start, svc.Lookups)
	union := render.FlightNumberUnion(results)

	snapshot, effects := svc.Store.Dispatch(sessionID, viewstate.SearchCompleted{
		Generation:    generation,
		Start:         req.Start,
		Results:       results,
		Panes:         panes,
		FlightNumbers: union,
	})
	svc.runEffects(sessionID, effects)

	outcome := "found"
	if snapshot.Phase == string(viewstate.PhaseEmpty) {
		outcome = "empty"
	}
	svc.Metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	svc.Metrics.SearchDuration.Observe(time.Since(initTime).Seconds())

	logging.WithSearch(sessionID, generation).Infow("Route search completed",
		"start", req.Start,
		"end", req.End,
		"outcome", outcome,
		"flight_numbers", len(union),
	)

	return snapshot, nil
}

// SelectTab switches the active criterion; only the map redraws, panes stay
// as rendered.
func (svc *SearchService) SelectTab(sessionID, criterion string) dtos.StateSnapshot {
	snapshot, effects := svc.Store.Dispatch(sessionID, viewstate.TabSelected{Criterion: criterion})
	svc.runEffects(sessionID, effects)
	return snapshot
}

// OpenPanel shows the conflict report panel.
func (svc *SearchService) OpenPanel(sessionID string) dtos.StateSnapshot {
	snapshot, _ := svc.Store.Dispatch(sessionID, viewstate.PanelOpened{})
	return snapshot
}

// ClosePanel hides the conflict report panel.
func (svc *SearchService) ClosePanel(sessionID string) dtos.StateSnapshot {
	snapshot, _ := svc.Store.Dispatch(sessionID, viewstate.PanelClosed{})
	return snapshot
}

// State returns the current snapshot without mutating anything.
func (svc *SearchService) State(sessionID string) dtos.StateSnapshot {
	return svc.Store.Snapshot(sessionID)
}

// ConflictReport fetches the schedule-wide report, cached briefly so the
// panel can be reopened without hammering the validator.
func (svc *SearchService) ConflictReport(ctx context.Context) (any, error) {
	key := string(constants.CachePrefixConflictReport)

	if val, found := svc.Cache.Get(key); found {
		svc.Metrics.CacheHitsTotal.WithLabelValues(key).Inc()
		return val, nil
	}
	svc.Metrics.CacheMissesTotal.WithLabelValues(key).Inc()

	report, _, err := svc.Validator.GetConflictReport(ctx)
	if err != nil {
		return nil, err
	}

	svc.Cache.Set(key, report, svc.ReportTTL)
	return report, nil
}

func (svc *SearchService) runEffects(sessionID string, effects []viewstate.Effect) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case viewstate.RedrawMap:
			svc.Metrics.MapOverlaysBuilt.Inc()
		case viewstate.EnqueueValidation:
			svc.enqueue(workers.ValidationRequest{
				SessionID:     sessionID,
				Generation:    e.Generation,
				FlightNumbers: e.FlightNumbers,
			})
		case viewstate.DiscardedStale:
			svc.Metrics.StaleChecksDiscarded.Inc()
		}
	}
}
