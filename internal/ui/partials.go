package ui

import (
	"fmt"
	"html"
	"strings"

	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/models/dtos"
	"flightdeck/routeview/internal/viewstate"
)

// The partial builders turn view-state snapshots into HTML fragments. Panes
// arrive pre-rendered from the formatter; this layer only lays them out, it
// never recomputes metrics.

func esc(s string) string { return html.EscapeString(s) }

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BuildResultsPartial renders the whole results region for one snapshot:
// warning banner, tab strip, and the active pane, or the guidance message
// when no routes were found.
func BuildResultsPartial(s dtos.StateSnapshot) string {
	var b strings.Builder

	if s.Phase == string(viewstate.PhaseEmpty) {
		if s.Message != "" {
			b.WriteString(fmt.Sprintf(`<div class="notice notice-empty">%s</div>`, esc(s.Message)))
		}
		return b.String()
	}

	// Banner goes ahead of existing content and never replaces it.
	if s.Warning != nil {
		b.WriteString(buildWarningBanner(*s.Warning))
	}

	b.WriteString(buildTabStrip(s.Panes, s.ActiveTab))

	for _, pane := range s.Panes {
		display := ""
		if pane.Criterion != s.ActiveTab {
			display = ` style="display:none"`
		}
		b.WriteString(fmt.Sprintf(`<div id="pane-%s" class="result-pane"%s>%s</div>`,
			esc(pane.Criterion), display, buildPane(pane)))
	}

	return b.String()
}

func buildTabStrip(panes []dtos.Pane, activeTab string) string {
	var b strings.Builder
	b.WriteString(`<div class="tab-strip">`)
	for _, pane := range panes {
		class := "tab"
		if pane.Criterion == activeTab {
			class = "tab tab-active"
		}
		b.WriteString(fmt.Sprintf(`<button class="%s" data-criterion="%s">%s</button>`,
			class, esc(pane.Criterion), esc(titleCase(pane.Criterion))))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func buildWarningBanner(v dtos.ConflictValidation) string {
	var b strings.Builder
	b.WriteString(`<div class="warning-banner">`)
	b.WriteString(`<strong>Schedule conflicts detected on this route.</strong>`)
	b.WriteString(`<ul>`)
	for _, cf := range v.ConflictedFlights {
		b.WriteString(fmt.Sprintf(`<li>%s: %s</li>`, esc(cf.Flight), esc(cf.Reason)))
	}
	b.WriteString(`</ul>`)
	b.WriteString(`<button id="view-conflicts">View collision report</button>`)
	b.WriteString(`</div>`)
	return b.String()
}

func buildPane(pane dtos.Pane) string {
	switch pane.Kind {
	case constants.PaneKindNoRoute, constants.PaneKindDataError:
		class := "notice-no-route"
		if pane.Kind == constants.PaneKindDataError {
			class = "notice-data-error"
		}
		return fmt.Sprintf(`<div class="notice %s">%s</div>`, class, esc(pane.Notice))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		`<div class="aggregate">Total cost: $%s &middot; Total duration: %s &middot; Stops: %d</div>`,
		esc(pane.Aggregate.TotalCost), esc(pane.Aggregate.TotalDuration), pane.Aggregate.Stops))

	for _, leg := range pane.Legs {
		b.WriteString(buildLegEntry(leg))
	}
	return b.String()
}

func buildLegEntry(leg dtos.LegView) string {
	duration := esc(leg.Duration)
	class := "leg"
	if !leg.Valid {
		// Flagged legs stay visible so the flight count reads true.
		class = "leg leg-invalid"
		duration = fmt.Sprintf(`<span class="invalid-marker">%s</span>`, esc(leg.Duration))
	}

	return fmt.Sprintf(`
<div class="%s">
    <div class="leg-head"><strong>%s</strong> &mdash; %s (%s)</div>
    <div class="leg-route">%s &rarr; %s</div>
    <div class="leg-meta">Departs %s &middot; Arrives %s &middot; %s &middot; $%s</div>
</div>
`,
		class,
		esc(leg.FlightNumber), esc(leg.AirlineName), esc(leg.Aircraft),
		esc(leg.OriginName), esc(leg.DestinationName),
		leg.DepartureUTC.UTC().Format("2006-01-02 15:04"),
		leg.ArrivalUTC.UTC().Format("2006-01-02 15:04"),
		duration, esc(leg.Cost),
	)
}

// BuildConflictPanel renders the schedule-wide collision report panel.
func BuildConflictPanel(report *dtos.ConflictReport) string {
	if report == nil {
		return `<div class="notice">Conflict report unavailable.</div>`
	}

	var b strings.Builder
	b.WriteString(`<div class="conflict-panel">`)
	b.WriteString(fmt.Sprintf(
		`<div class="conflict-summary">Flights checked: %d &middot; Clean: %d &middot; Conflicted: %d</div>`,
		report.Summary.TotalFlights, report.Summary.Successful, report.Summary.Failed))
	b.WriteString(fmt.Sprintf(
		`<div class="conflict-breakdown">Aircraft: %d &middot; Runway: %d &middot; Gate: %d &middot; Positioning: %d</div>`,
		report.Summary.ConflictBreakdown.AircraftConflicts,
		report.Summary.ConflictBreakdown.RunwayConflicts,
		report.Summary.ConflictBreakdown.GateConflicts,
		report.Summary.ConflictBreakdown.PositioningConflicts))

	if len(report.FailedFlights) > 0 {
		b.WriteString(`<div class="conflict-failed">Failing flights: `)
		b.WriteString(esc(strings.Join(report.FailedFlights, ", ")))
		b.WriteString(`</div>`)
	}

	b.WriteString(`<ul class="conflict-list">`)
	for _, c := range report.Conflicts {
		b.WriteString(fmt.Sprintf(`<li>%s</li>`, esc(c)))
	}
	b.WriteString(`</ul>`)
	b.WriteString(`<button id="close-conflicts">Close</button>`)
	b.WriteString(`</div>`)
	return b.String()
}
