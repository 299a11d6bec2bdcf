package derive

import (
	"errors"
	"fmt"
	"time"

	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/models/dtos"
)

// ErrNoRoute marks a result that carries no renderable route (not_found, or
// a malformed "found" with an empty path).
var ErrNoRoute = errors.New("no route in result")

// LegMetrics is the computed view of one leg.
type LegMetrics struct {
	Duration time.Duration
	// Valid is false when the leg's arrival precedes its departure. Invalid
	// legs stay visible in rendering, marked explicitly, so the displayed
	// flight count is never silently wrong.
	Valid bool
}

// DerivedRoute is the computed, read-only view over one RouteResult.
type DerivedRoute struct {
	TotalCost float64
	// TotalDuration is last leg arrival minus first leg departure, exact.
	TotalDuration time.Duration
	Stops         int
	Legs          []LegMetrics

	// Valid is false when the route-level duration is negative. An invalid
	// route renders only its Notice; no metrics, no leg details.
	Valid  bool
	Notice string
}

// Route computes a DerivedRoute from one criterion's result.
func Route(r dtos.RouteResult) (*DerivedRoute, error) {
	if !r.Found() {
		return nil, ErrNoRoute
	}

	legs := r.Path
	d := &DerivedRoute{
		Stops: len(legs) - 1,
		Legs:  make([]LegMetrics, len(legs)),
		Valid: true,
	}

	// Total cost sums every leg, flagged or not: the aggregate must match
	// the visible entries.
	for i, leg := range legs {
		d.TotalCost += leg.Cost
		dur := leg.ArrivalUTC.Sub(leg.DepartureUTC)
		d.Legs[i] = LegMetrics{Duration: dur, Valid: dur >= 0}
	}

	d.TotalDuration = legs[len(legs)-1].ArrivalUTC.Sub(legs[0].DepartureUTC)
	if d.TotalDuration < 0 {
		d.Valid = false
		d.Notice = constants.MsgRouteDataErr
	}

	return d, nil
}

// FormatDuration renders a duration as whole hours and remainder minutes.
// Rounding happens here only; validity thresholds use the exact duration.
func FormatDuration(d time.Duration) string {
	whole := d.Truncate(time.Minute)
	hours := int(whole / time.Hour)
	minutes := int((whole % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatCost renders a cost to two decimal places.
func FormatCost(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
