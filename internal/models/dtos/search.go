package dtos

import "time"

// SearchPreferences mirrors the route-search backend's preference block.
type SearchPreferences struct {
	PreferredAirline *string `json:"preferred_airline"`
	AvoidAirline     *string `json:"avoid_airline"`
}

// SearchRequest is the route-search submission.
type SearchRequest struct {
	Start       string            `json:"start"`
	End         string            `json:"end"`
	Preferences SearchPreferences `json:"preferences"`
}

// Leg is one flown flight segment. The implicit origin of the first leg is
// the search start airport; every later leg departs from the previous leg's
// destination.
type Leg struct {
	FlightNumber string    `json:"flight_number"`
	Airline      string    `json:"airline"`
	Aircraft     string    `json:"aircraft"`
	Destination  string    `json:"destination"`
	DepartureUTC time.Time `json:"departure_utc"`
	ArrivalUTC   time.Time `json:"arrival_utc"`
	Cost         float64   `json:"cost"`
}

// Route result statuses as sent by the backend.
const (
	RouteStatusFound    = "found"
	RouteStatusNotFound = "not_found"
)

// RouteResult is one criterion's outcome.
type RouteResult struct {
	Status string   `json:"status"`
	Path   []Leg    `json:"path,omitempty"`
	Value  *float64 `json:"value,omitempty"`
}

// Found reports whether the result carries a non-empty route. A "found"
// status with an empty path is not a valid found state and is treated as
// no route.
func (r RouteResult) Found() bool {
	return r.Status == RouteStatusFound && len(r.Path) > 0
}

// ResultSet maps criterion name (cheapest, fastest, best) to its RouteResult.
type ResultSet map[string]RouteResult

// ConstantsResponse carries the backend's lookup tables.
type ConstantsResponse struct {
	AirlineNames       map[string]string    `json:"airlineNames"`
	AirportCoordinates map[string][]float64 `json:"airportCoordinates"`
	AirportNames       map[string]string    `json:"airportNames"`
}
