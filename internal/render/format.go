package render

import (
	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/derive"
	"flightdeck/routeview/internal/lookup"
	"flightdeck/routeview/internal/models/dtos"
)

// BuildPanes turns a full ResultSet into one renderable pane per criterion,
// in the contract's fixed priority order. Panes are built once per search;
// tab switches only redraw the map.
func BuildPanes(results dtos.ResultSet, start string, dir *lookup.Directory) []dtos.Pane {
	panes := make([]dtos.Pane, 0, len(results))
	for _, criterion := range constants.CriterionPriority {
		result, ok := results[criterion]
		if !ok {
			continue
		}
		panes = append(panes, buildPane(criterion, result, start, dir))
	}
	return panes
}

func buildPane(criterion string, result dtos.RouteResult, start string, dir *lookup.Directory) dtos.Pane {
	derived, err := derive.Route(result)
	if err != nil {
		return dtos.Pane{
			Criterion: criterion,
			Kind:      constants.PaneKindNoRoute,
			Notice:    constants.MsgNoRouteOption,
		}
	}

	if !derived.Valid {
		// A globally-invalid route gets the data-error notice and nothing
		// else; no partial rendering.
		return dtos.Pane{
			Criterion: criterion,
			Kind:      constants.PaneKindDataError,
			Notice:    derived.Notice,
		}
	}

	pane := dtos.Pane{
		Criterion: criterion,
		Kind:      constants.PaneKindRoute,
		Aggregate: &dtos.AggregateLine{
			TotalCost:     derive.FormatCost(derived.TotalCost),
			TotalDuration: derive.FormatDuration(derived.TotalDuration),
			Stops:         derived.Stops,
		},
		Legs: make([]dtos.LegView, len(result.Path)),
	}

	// Origin chaining walks the original unfiltered sequence: leg i departs
	// from leg i-1's destination even when legs around it are flagged.
	origin := start
	for i, leg := range result.Path {
		metrics := derived.Legs[i]

		view := dtos.LegView{
			FlightNumber:    leg.FlightNumber,
			AirlineCode:     leg.Airline,
			AirlineName:     dir.AirlineName(leg.Airline),
			Aircraft:        leg.Aircraft,
			OriginCode:      origin,
			OriginName:      dir.AirportName(origin),
			DestinationCode: leg.Destination,
			DestinationName: dir.AirportName(leg.Destination),
			DepartureUTC:    leg.DepartureUTC,
			ArrivalUTC:      leg.ArrivalUTC,
			Cost:            derive.FormatCost(leg.Cost),
			Valid:           metrics.Valid,
		}
		if metrics.Valid {
			view.Duration = derive.FormatDuration(metrics.Duration)
		} else {
			view.Duration = constants.MsgInvalidTimes
		}

		pane.Legs[i] = view
		origin = leg.Destination
	}

	return pane
}

// FlightNumberUnion collects the distinct flight numbers across all found
// criteria, in first-appearance order following the priority order. This is
// the set handed to the conflict validator.
func FlightNumberUnion(results dtos.ResultSet) []string {
	seen := make(map[string]struct{})
	var union []string
	for _, criterion := range constants.CriterionPriority {
		result, ok := results[criterion]
		if !ok || !result.Found() {
			continue
		}
		for _, leg := range result.Path {
			if leg.FlightNumber == "" {
				continue
			}
			if _, dup := seen[leg.FlightNumber]; dup {
				continue
			}
			seen[leg.FlightNumber] = struct{}{}
			union = append(union, leg.FlightNumber)
		}
	}
	return union
}

// AnyFound reports whether at least one criterion carries a route.
func AnyFound(results dtos.ResultSet) bool {
	for _, result := range results {
		if result.Found() {
			return true
		}
	}
	return false
}
