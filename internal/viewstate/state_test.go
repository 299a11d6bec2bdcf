package viewstate

import (
	"testing"
	"time"

	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/models/dtos"
)

func testStore() (*Store, *int) {
	redraws := 0
	store := NewStore(time.Hour, func(criterion, start string, legs []dtos.Leg) *dtos.MapOverlay {
		redraws++
		return &dtos.MapOverlay{Criterion: criterion}
	})
	return store, &redraws
}

func foundResults() (dtos.ResultSet, []dtos.Pane) {
	results := dtos.ResultSet{
		"cheapest": {Status: dtos.RouteStatusFound, Path: []dtos.Leg{{FlightNumber: "BA1", Destination: "LHR"}}},
		"fastest":  {Status: dtos.RouteStatusFound, Path: []dtos.Leg{{FlightNumber: "AF2", Destination: "CDG"}}},
		"best":     {Status: dtos.RouteStatusNotFound},
	}
	panes := []dtos.Pane{
		{Criterion: "cheapest", Kind: constants.PaneKindRoute},
		{Criterion: "fastest", Kind: constants.PaneKindRoute},
		{Criterion: "best", Kind: constants.PaneKindNoRoute},
	}
	return results, panes
}

func completeSearch(t *testing.T, store *Store, session string) uint64 {
	t.Helper()
	snap, _ := store.Dispatch(session, SearchStarted{})
	results, panes := foundResults()
	snap2, _ := store.Dispatch(session, SearchCompleted{
		Generation:    snap.Generation,
		Start:         "JFK",
		Results:       results,
		Panes:         panes,
		FlightNumbers: []string{"BA1", "AF2"},
	})
	if snap2.Phase != string(PhaseResults) {
		t.Fatalf("Expected results phase, got %s", snap2.Phase)
	}
	return snap.Generation
}

func TestSearchStarted_ResetsAndBumpsGeneration(t *testing.T) {
	store, _ := testStore()
	completeSearch(t, store, "s1")

	snap, effects := store.Dispatch("s1", SearchStarted{})

	if snap.Generation != 2 {
		t.Errorf("Expected generation 2, got %d", snap.Generation)
	}
	if snap.Phase != string(PhaseEmpty) {
		t.Errorf("Expected empty phase after reset, got %s", snap.Phase)
	}
	if snap.Panes != nil || snap.Overlay != nil || snap.Warning != nil {
		t.Error("Expected panes, overlay, and warning cleared")
	}
	if len(effects) != 0 {
		t.Errorf("Expected no effects, got %v", effects)
	}
}

func TestSearchCompleted_HappyPath(t *testing.T) {
	store, redraws := testStore()

	snap, _ := store.Dispatch("s1", SearchStarted{})
	results, panes := foundResults()
	snap, effects := store.Dispatch("s1", SearchCompleted{
		Generation:    snap.Generation,
		Start:         "JFK",
		Results:       results,
		Panes:         panes,
		FlightNumbers: []string{"BA1", "AF2"},
	})

	if snap.Phase != string(PhaseResults) {
		t.Fatalf("Expected results phase, got %s", snap.Phase)
	}
	if snap.ActiveTab != "cheapest" {
		t.Errorf("Expected default tab cheapest, got %s", snap.ActiveTab)
	}
	if snap.Overlay == nil || snap.Overlay.Criterion != "cheapest" {
		t.Errorf("Expected overlay drawn for cheapest, got %+v", snap.Overlay)
	}
	if *redraws != 1 {
		t.Errorf("Expected 1 redraw, got %d", *redraws)
	}

	var enqueue *EnqueueValidation
	for _, e := range effects {
		if eq, ok := e.(EnqueueValidation); ok {
			enqueue = &eq
		}
	}
	if enqueue == nil {
		t.Fatal("Expected an EnqueueValidation effect")
	}
	if enqueue.Generation != snap.Generation {
		t.Errorf("Expected validation tagged with generation %d, got %d", snap.Generation, enqueue.Generation)
	}
	if len(enqueue.FlightNumbers) != 2 {
		t.Errorf("Expected 2 flight numbers, got %v", enqueue.FlightNumbers)
	}
}

func TestSearchCompleted_DefaultTabFollowsPriority(t *testing.T) {
	store, _ := testStore()

	snap, _ := store.Dispatch("s1", SearchStarted{})
	snap, _ = store.Dispatch("s1", SearchCompleted{
		Generation: snap.Generation,
		Start:      "JFK",
		Results: dtos.ResultSet{
			"fastest": {Status: dtos.RouteStatusFound, Path: []dtos.Leg{{FlightNumber: "AF2"}}},
			"best":    {Status: dtos.RouteStatusFound, Path: []dtos.Leg{{FlightNumber: "BA1"}}},
		},
		Panes: []dtos.Pane{
			{Criterion: "fastest", Kind: constants.PaneKindRoute},
			{Criterion: "best", Kind: constants.PaneKindRoute},
		},
	})

	if snap.ActiveTab != "fastest" {
		t.Errorf("Expected fastest as default when cheapest is absent, got %s", snap.ActiveTab)
	}
}

func TestSearchCompleted_AllNotFound(t *testing.T) {
	store, redraws := testStore()

	snap, _ := store.Dispatch("s1", SearchStarted{})
	snap, effects := store.Dispatch("s1", SearchCompleted{
		Generation: snap.Generation,
		Start:      "JFK",
		Results: dtos.ResultSet{
			"cheapest": {Status: dtos.RouteStatusNotFound},
			"fastest":  {Status: dtos.RouteStatusNotFound},
			"best":     {Status: dtos.RouteStatusNotFound},
		},
	})

	if snap.Phase != string(PhaseEmpty) {
		t.Errorf("Expected empty phase, got %s", snap.Phase)
	}
	if snap.Message != constants.MsgNoRoutesFound {
		t.Errorf("Expected guidance message, got %q", snap.Message)
	}
	if len(effects) != 0 {
		t.Errorf("Expected no effects, got %v", effects)
	}
	if *redraws != 0 {
		t.Errorf("Expected no redraw, got %d", *redraws)
	}
}

func TestSearchCompleted_StaleGenerationDiscarded(t *testing.T) {
	store, _ := testStore()
	completeSearch(t, store, "s1")

	// A new search starts before the old response lands.
	store.Dispatch("s1", SearchStarted{})

	results, panes := foundResults()
	snap, effects := store.Dispatch("s1", SearchCompleted{
		Generation: 1, // the superseded cycle
		Start:      "JFK",
		Results:    results,
		Panes:      panes,
	})

	if snap.Phase != string(PhaseEmpty) {
		t.Errorf("Expected state untouched in empty phase, got %s", snap.Phase)
	}
	if len(effects) != 1 {
		t.Fatalf("Expected exactly one effect, got %v", effects)
	}
	if _, ok := effects[0].(DiscardedStale); !ok {
		t.Errorf("Expected DiscardedStale, got %T", effects[0])
	}
}

func TestTabSelected(t *testing.T) {
	store, redraws := testStore()
	completeSearch(t, store, "s1")
	*redraws = 0

	// Unknown criterion: no-op.
	snap, effects := store.Dispatch("s1", TabSelected{Criterion: "scenic"})
	if snap.ActiveTab != "cheapest" || len(effects) != 0 {
		t.Errorf("Expected no-op for unknown criterion, got tab %s effects %v", snap.ActiveTab, effects)
	}

	// Same tab: no redraw.
	_, effects = store.Dispatch("s1", TabSelected{Criterion: "cheapest"})
	if len(effects) != 0 || *redraws != 0 {
		t.Errorf("Expected no redraw for same tab, got effects %v redraws %d", effects, *redraws)
	}

	// Real switch: active tab moves and the map redraws.
	snap, effects = store.Dispatch("s1", TabSelected{Criterion: "fastest"})
	if snap.ActiveTab != "fastest" {
		t.Errorf("Expected active tab fastest, got %s", snap.ActiveTab)
	}
	if *redraws != 1 {
		t.Errorf("Expected 1 redraw, got %d", *redraws)
	}
	if snap.Overlay == nil || snap.Overlay.Criterion != "fastest" {
		t.Errorf("Expected fastest overlay, got %+v", snap.Overlay)
	}

	// Switching to a no_route pane clears the overlay.
	snap, _ = store.Dispatch("s1", TabSelected{Criterion: "best"})
	if snap.Overlay != nil {
		t.Errorf("Expected overlay cleared for no_route pane, got %+v", snap.Overlay)
	}
}

func TestTabSelected_BeforeAnyResults(t *testing.T) {
	store, _ := testStore()

	snap, effects := store.Dispatch("s1", TabSelected{Criterion: "cheapest"})
	if snap.Phase != string(PhaseEmpty) || len(effects) != 0 {
		t.Errorf("Expected no-op before results, got phase %s effects %v", snap.Phase, effects)
	}
}

func TestConflictsDetected(t *testing.T) {
	store, _ := testStore()
	gen := completeSearch(t, store, "s1")

	validation := dtos.ConflictValidation{
		ConflictsDetected: true,
		ConflictedFlights: []dtos.ConflictedFlight{{Flight: "BA1", Reason: "runway conflict"}},
	}

	snap, _ := store.Dispatch("s1", ConflictsDetected{Generation: gen, Validation: validation})
	if snap.Phase != string(PhaseResultsWarning) {
		t.Errorf("Expected results_warning phase, got %s", snap.Phase)
	}
	if snap.Warning == nil || len(snap.Warning.ConflictedFlights) != 1 {
		t.Errorf("Expected warning with one flight, got %+v", snap.Warning)
	}

	// A second detection in the same cycle does not stack a second banner.
	second := dtos.ConflictValidation{
		ConflictsDetected: true,
		ConflictedFlights: []dtos.ConflictedFlight{{Flight: "AF2", Reason: "gate conflict"}},
	}
	snap, _ = store.Dispatch("s1", ConflictsDetected{Generation: gen, Validation: second})
	if snap.Warning.ConflictedFlights[0].Flight != "BA1" {
		t.Errorf("Expected first banner kept, got %+v", snap.Warning)
	}
}

func TestConflictsDetected_CleanResultIgnored(t *testing.T) {
	store, _ := testStore()
	gen := completeSearch(t, store, "s1")

	snap, _ := store.Dispatch("s1", ConflictsDetected{
		Generation: gen,
		Validation: dtos.ConflictValidation{ConflictsDetected: false},
	})

	if snap.Phase != string(PhaseResults) || snap.Warning != nil {
		t.Errorf("Expected clean validation ignored, got phase %s warning %+v", snap.Phase, snap.Warning)
	}
}

func TestConflictsDetected_StaleDiscarded(t *testing.T) {
	store, _ := testStore()
	gen := completeSearch(t, store, "s1")

	// New search supersedes the cycle the validation was issued for.
	store.Dispatch("s1", SearchStarted{})

	snap, effects := store.Dispatch("s1", ConflictsDetected{
		Generation: gen,
		Validation: dtos.ConflictValidation{ConflictsDetected: true},
	})

	if snap.Warning != nil || snap.Phase != string(PhaseEmpty) {
		t.Errorf("Expected stale validation discarded, got phase %s warning %+v", snap.Phase, snap.Warning)
	}
	if len(effects) != 1 {
		t.Fatalf("Expected one effect, got %v", effects)
	}
	if _, ok := effects[0].(DiscardedStale); !ok {
		t.Errorf("Expected DiscardedStale, got %T", effects[0])
	}
}

func TestPanelOpenClose(t *testing.T) {
	store, _ := testStore()
	gen := completeSearch(t, store, "s1")

	snap, _ := store.Dispatch("s1", PanelOpened{})
	if snap.Phase != string(PhaseConflictPanel) {
		t.Errorf("Expected conflict_panel phase, got %s", snap.Phase)
	}
	if snap.ActivePanel != PanelConflicts {
		t.Errorf("Expected conflicts panel active, got %s", snap.ActivePanel)
	}

	// A warning landing while the panel is open does not change the phase.
	store.Dispatch("s1", ConflictsDetected{
		Generation: gen,
		Validation: dtos.ConflictValidation{ConflictsDetected: true},
	})

	snap, _ = store.Dispatch("s1", PanelClosed{})
	if snap.Phase != string(PhaseResultsWarning) {
		t.Errorf("Expected return to results_warning, got %s", snap.Phase)
	}
	if snap.ActivePanel != PanelResults {
		t.Errorf("Expected results panel active, got %s", snap.ActivePanel)
	}
}

func TestPanelClosed_WithoutResults(t *testing.T) {
	store, _ := testStore()

	store.Dispatch("s1", PanelOpened{})
	snap, _ := store.Dispatch("s1", PanelClosed{})

	if snap.Phase != string(PhaseEmpty) {
		t.Errorf("Expected empty phase when no results exist, got %s", snap.Phase)
	}
}

func TestPanelClosed_NoOpOutsidePanel(t *testing.T) {
	store, _ := testStore()
	completeSearch(t, store, "s1")

	snap, _ := store.Dispatch("s1", PanelClosed{})
	if snap.Phase != string(PhaseResults) {
		t.Errorf("Expected phase unchanged, got %s", snap.Phase)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store, _ := testStore()
	completeSearch(t, store, "s1")

	snap := store.Snapshot("s2")
	if snap.Phase != string(PhaseEmpty) {
		t.Errorf("Expected fresh session in empty phase, got %s", snap.Phase)
	}
	if snap.Generation != 0 {
		t.Errorf("Expected generation 0 for fresh session, got %d", snap.Generation)
	}
}
