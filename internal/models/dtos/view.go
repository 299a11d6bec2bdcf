package dtos

import (
	"time"

	"flightdeck/routeview/internal/constants"
)

// AggregateLine is a route pane's summary line.
type AggregateLine struct {
	TotalCost     string `json:"total_cost"`
	TotalDuration string `json:"total_duration"`
	Stops         int    `json:"stops"`
}

// LegView is one rendered leg entry. Origin fields are derived by chaining
// destinations over the unfiltered leg sequence.
type LegView struct {
	FlightNumber    string    `json:"flight_number"`
	AirlineCode     string    `json:"airline_code"`
	AirlineName     string    `json:"airline_name"`
	Aircraft        string    `json:"aircraft"`
	OriginCode      string    `json:"origin_code"`
	OriginName      string    `json:"origin_name"`
	DestinationCode string    `json:"destination_code"`
	DestinationName string    `json:"destination_name"`
	DepartureUTC    time.Time `json:"departure_utc"`
	ArrivalUTC      time.Time `json:"arrival_utc"`
	Cost            string    `json:"cost"`
	Duration        string    `json:"duration"`
	Valid           bool      `json:"valid"`
}

// Pane is one criterion's renderable result.
type Pane struct {
	Criterion string             `json:"criterion"`
	Kind      constants.PaneKind `json:"kind"`
	Notice    string             `json:"notice,omitempty"`
	Aggregate *AggregateLine     `json:"aggregate,omitempty"`
	Legs      []LegView          `json:"legs,omitempty"`
}

// Marker is one map marker primitive.
type Marker struct {
	Lat   float64              `json:"lat"`
	Lng   float64              `json:"lng"`
	Kind  constants.MarkerKind `json:"kind"`
	Code  string               `json:"code"`
	Label string               `json:"label"`
}

// PathPoint is one vertex of the connecting polyline.
type PathPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is the axis-aligned extent of a drawn path.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// MapOverlay is the full marker/polyline layer for one route. A redraw
// replaces the overlay wholesale; the map widget clears the previous layer
// before applying a new one.
type MapOverlay struct {
	Criterion  string      `json:"criterion"`
	Markers    []Marker    `json:"markers"`
	Path       []PathPoint `json:"path"`
	Bounds     *Bounds     `json:"bounds,omitempty"`
	FitPadding float64     `json:"fit_padding"`
}

// StateSnapshot is the client-facing projection of a session's view state.
type StateSnapshot struct {
	Generation  uint64              `json:"generation"`
	Phase       string              `json:"phase"`
	ActiveTab   string              `json:"active_tab,omitempty"`
	ActivePanel string              `json:"active_panel"`
	Message     string              `json:"message,omitempty"`
	Panes       []Pane              `json:"panes,omitempty"`
	Warning     *ConflictValidation `json:"warning,omitempty"`
	Overlay     *MapOverlay         `json:"overlay,omitempty"`
}
