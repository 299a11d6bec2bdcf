package constants

type (
	APIStatus   string
	CachePrefix string
	PaneKind    string
	MarkerKind  string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixConflictReport CachePrefix = "CONFLICT_REPORT"

	PaneKindRoute     PaneKind = "route"
	PaneKindNoRoute   PaneKind = "no_route"
	PaneKindDataError PaneKind = "data_error"

	MarkerKindOrigin      MarkerKind = "origin"
	MarkerKindLayover     MarkerKind = "layover"
	MarkerKindDestination MarkerKind = "destination"
)

// CriterionPriority is the fixed iteration order of the search contract's
// criteria. Default tab selection follows this order.
var CriterionPriority = []string{"cheapest", "fastest", "best"}

// User-facing notices
const (
	MsgNoRoutesFound = "No routes available for this search. Try different airports or relax your airline filters."
	MsgNoRouteOption = "No route found for this option."
	MsgRouteDataErr  = "Data error: arrival before departure."
	MsgInvalidTimes  = "invalid times"
)

// FallbackAirlineName is used when a leg carries no airline code at all.
const FallbackAirlineName = "Unknown Airline"
