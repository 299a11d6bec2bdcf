package render

import (
	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/lookup"
	"flightdeck/routeview/internal/models/dtos"
)

// FitPadding is the fixed padding factor applied when fitting the map view
// to a drawn route's bounds.
const FitPadding = 0.15

// BuildOverlay draws one route as map primitives: a marker per resolved
// point in path order (duplicates allowed when a route revisits an airport)
// and one polyline through the same points. Points without a known
// coordinate are dropped silently; the remaining points keep their order.
// The result replaces the previous overlay wholesale, so redrawing twice
// yields exactly the same layer.
func BuildOverlay(criterion, start string, legs []dtos.Leg, dir *lookup.Directory) *dtos.MapOverlay {
	codes := make([]string, 0, len(legs)+1)
	codes = append(codes, start)
	for _, leg := range legs {
		codes = append(codes, leg.Destination)
	}

	overlay := &dtos.MapOverlay{
		Criterion:  criterion,
		Markers:    make([]dtos.Marker, 0, len(codes)),
		Path:       make([]dtos.PathPoint, 0, len(codes)),
		FitPadding: FitPadding,
	}

	for _, code := range codes {
		coord, ok := dir.Coordinates(code)
		if !ok {
			continue
		}
		overlay.Markers = append(overlay.Markers, dtos.Marker{
			Lat:   coord.Lat,
			Lng:   coord.Lng,
			Code:  code,
			Label: dir.AirportName(code),
		})
		overlay.Path = append(overlay.Path, dtos.PathPoint{Lat: coord.Lat, Lng: coord.Lng})
	}

	classifyMarkers(overlay.Markers)
	overlay.Bounds = pathBounds(overlay.Path)

	return overlay
}

// classifyMarkers labels the first drawn point as origin, the last as
// destination, and everything between as a layover.
func classifyMarkers(markers []dtos.Marker) {
	for i := range markers {
		switch i {
		case 0:
			markers[i].Kind = constants.MarkerKindOrigin
		case len(markers) - 1:
			markers[i].Kind = constants.MarkerKindDestination
		default:
			markers[i].Kind = constants.MarkerKindLayover
		}
	}
}

// pathBounds returns the extent of the drawn path, or nil when no point
// resolved; a nil bounds leaves the map view unchanged.
func pathBounds(path []dtos.PathPoint) *dtos.Bounds {
	if len(path) == 0 {
		return nil
	}

	b := &dtos.Bounds{
		South: path[0].Lat,
		North: path[0].Lat,
		West:  path[0].Lng,
		East:  path[0].Lng,
	}
	for _, p := range path[1:] {
		if p.Lat < b.South {
			b.South = p.Lat
		}
		if p.Lat > b.North {
			b.North = p.Lat
		}
		if p.Lng < b.West {
			b.West = p.Lng
		}
		if p.Lng > b.East {
			b.East = p.Lng
		}
	}
	return b
}
