package ui

import (
	"strings"
	"testing"

	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/models/dtos"
	"flightdeck/routeview/internal/viewstate"
)

func TestBuildResultsPartial_EmptyWithGuidance(t *testing.T) {
	html := BuildResultsPartial(dtos.StateSnapshot{
		Phase:   string(viewstate.PhaseEmpty),
		Message: constants.MsgNoRoutesFound,
	})

	if !strings.Contains(html, "notice-empty") {
		t.Error("Expected guidance notice markup")
	}
	if !strings.Contains(html, "Try different airports") {
		t.Errorf("Expected guidance text, got %q", html)
	}
}

func TestBuildResultsPartial_EmptyWithoutMessage(t *testing.T) {
	html := BuildResultsPartial(dtos.StateSnapshot{Phase: string(viewstate.PhaseEmpty)})
	if html != "" {
		t.Errorf("Expected empty fragment before first search, got %q", html)
	}
}

func TestBuildResultsPartial_TabsAndActivePane(t *testing.T) {
	snap := dtos.StateSnapshot{
		Phase:     string(viewstate.PhaseResults),
		ActiveTab: "fastest",
		Panes: []dtos.Pane{
			{Criterion: "cheapest", Kind: constants.PaneKindNoRoute, Notice: constants.MsgNoRouteOption},
			{Criterion: "fastest", Kind: constants.PaneKindRoute, Aggregate: &dtos.AggregateLine{TotalCost: "420.00", TotalDuration: "7h 0m", Stops: 0}},
		},
	}

	html := BuildResultsPartial(snap)

	if !strings.Contains(html, `data-criterion="cheapest"`) || !strings.Contains(html, `data-criterion="fastest"`) {
		t.Error("Expected a tab per pane")
	}
	if !strings.Contains(html, `class="tab tab-active" data-criterion="fastest"`) {
		t.Errorf("Expected fastest tab marked active, got %q", html)
	}
	if !strings.Contains(html, `id="pane-cheapest" class="result-pane" style="display:none"`) {
		t.Error("Expected inactive pane hidden")
	}
	if !strings.Contains(html, "Total cost: $420.00") {
		t.Error("Expected aggregate line in active pane")
	}
}

func TestBuildResultsPartial_DataErrorPaneHasNoAggregate(t *testing.T) {
	snap := dtos.StateSnapshot{
		Phase:     string(viewstate.PhaseResults),
		ActiveTab: "cheapest",
		Panes: []dtos.Pane{{
			Criterion: "cheapest",
			Kind:      constants.PaneKindDataError,
			Notice:    constants.MsgRouteDataErr,
		}},
	}

	html := BuildResultsPartial(snap)
	if !strings.Contains(html, "notice-data-error") {
		t.Error("Expected data-error notice markup")
	}
	if strings.Contains(html, "Total cost") || strings.Contains(html, "Total duration") {
		t.Errorf("Expected no aggregate line for a data-error route, got %q", html)
	}
}

func TestBuildResultsPartial_WarningBanner(t *testing.T) {
	snap := dtos.StateSnapshot{
		Phase:     string(viewstate.PhaseResultsWarning),
		ActiveTab: "cheapest",
		Panes:     []dtos.Pane{{Criterion: "cheapest", Kind: constants.PaneKindRoute, Aggregate: &dtos.AggregateLine{}}},
		Warning: &dtos.ConflictValidation{
			ConflictsDetected: true,
			ConflictedFlights: []dtos.ConflictedFlight{{Flight: "BA178", Reason: "runway overlap"}},
		},
	}

	html := BuildResultsPartial(snap)

	bannerAt := strings.Index(html, "warning-banner")
	tabsAt := strings.Index(html, "tab-strip")
	if bannerAt == -1 || tabsAt == -1 || bannerAt > tabsAt {
		t.Error("Expected warning banner rendered ahead of the results")
	}
	if !strings.Contains(html, "BA178: runway overlap") {
		t.Errorf("Expected conflicted flight listed, got %q", html)
	}
}

func TestBuildResultsPartial_EscapesUntrustedText(t *testing.T) {
	snap := dtos.StateSnapshot{
		Phase:     string(viewstate.PhaseResults),
		ActiveTab: "cheapest",
		Panes: []dtos.Pane{{
			Criterion: "cheapest",
			Kind:      constants.PaneKindRoute,
			Aggregate: &dtos.AggregateLine{},
			Legs: []dtos.LegView{{
				FlightNumber: "BA1",
				AirlineName:  `<script>alert(1)</script>`,
				Valid:        true,
			}},
		}},
	}

	html := BuildResultsPartial(snap)
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("Expected airline name escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("Expected escaped entity in output")
	}
}

func TestBuildResultsPartial_InvalidLegMarked(t *testing.T) {
	snap := dtos.StateSnapshot{
		Phase:     string(viewstate.PhaseResults),
		ActiveTab: "cheapest",
		Panes: []dtos.Pane{{
			Criterion: "cheapest",
			Kind:      constants.PaneKindRoute,
			Aggregate: &dtos.AggregateLine{},
			Legs: []dtos.LegView{
				{FlightNumber: "BA1", Duration: "1h 0m", Valid: true},
				{FlightNumber: "AF2", Duration: constants.MsgInvalidTimes, Valid: false},
			},
		}},
	}

	html := BuildResultsPartial(snap)
	if !strings.Contains(html, "leg leg-invalid") {
		t.Error("Expected invalid leg styling")
	}
	if !strings.Contains(html, constants.MsgInvalidTimes) {
		t.Error("Expected invalid-times marker text")
	}
}

func TestBuildConflictPanel(t *testing.T) {
	report := &dtos.ConflictReport{
		Summary: dtos.ConflictSummary{
			TotalFlights: 120,
			Successful:   117,
			Failed:       3,
			ConflictBreakdown: dtos.ConflictBreakdown{
				RunwayConflicts: 2,
				GateConflicts:   1,
			},
		},
		FailedFlights: []string{"BA178", "AF007"},
		Conflicts:     []string{"BA178 and AF007 share runway 27L"},
	}

	html := BuildConflictPanel(report)

	if !strings.Contains(html, "Flights checked: 120") {
		t.Error("Expected summary line")
	}
	if !strings.Contains(html, "Runway: 2") {
		t.Error("Expected breakdown counts")
	}
	if !strings.Contains(html, "BA178, AF007") {
		t.Error("Expected failing flights list")
	}
	if !strings.Contains(html, "share runway 27L") {
		t.Error("Expected conflict detail entries")
	}
}

func TestBuildConflictPanel_NilReport(t *testing.T) {
	html := BuildConflictPanel(nil)
	if !strings.Contains(html, "unavailable") {
		t.Errorf("Expected unavailable notice, got %q", html)
	}
}
