package derive

import (
	"errors"
	"testing"
	"time"

	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/models/dtos"
)

var base = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func leg(flight string, dep, arr time.Time, cost float64) dtos.Leg {
	return dtos.Leg{
		FlightNumber: flight,
		Airline:      "BA",
		Aircraft:     "B777",
		Destination:  "LHR",
		DepartureUTC: dep,
		ArrivalUTC:   arr,
		Cost:         cost,
	}
}

func TestRoute_NotFound(t *testing.T) {
	_, err := Route(dtos.RouteResult{Status: dtos.RouteStatusNotFound})
	if !errors.Is(err, ErrNoRoute) {
		t.Fatalf("Expected ErrNoRoute, got %v", err)
	}
}

func TestRoute_FoundWithEmptyPath(t *testing.T) {
	_, err := Route(dtos.RouteResult{Status: dtos.RouteStatusFound, Path: []dtos.Leg{}})
	if !errors.Is(err, ErrNoRoute) {
		t.Fatalf("Expected ErrNoRoute for found result with empty path, got %v", err)
	}
}

func TestRoute_Totals(t *testing.T) {
	result := dtos.RouteResult{
		Status: dtos.RouteStatusFound,
		Path: []dtos.Leg{
			leg("BA101", base, base.Add(90*time.Minute), 120.50),
			leg("AF202", base.Add(2*time.Hour), base.Add(3*time.Hour), 79.25),
		},
	}

	d, err := Route(result)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if d.TotalCost != 199.75 {
		t.Errorf("Expected total cost 199.75, got %v", d.TotalCost)
	}

	// Last arrival minus first departure, layover time included.
	if d.TotalDuration != 3*time.Hour {
		t.Errorf("Expected total duration 3h, got %v", d.TotalDuration)
	}

	if d.Stops != 1 {
		t.Errorf("Expected 1 stop, got %d", d.Stops)
	}

	if !d.Valid {
		t.Error("Expected route to be valid")
	}

	for i, lm := range d.Legs {
		if !lm.Valid {
			t.Errorf("Expected leg %d to be valid", i)
		}
	}
}

func TestRoute_InvalidLegStillCounted(t *testing.T) {
	// Middle leg arrives before it departs.
	result := dtos.RouteResult{
		Status: dtos.RouteStatusFound,
		Path: []dtos.Leg{
			leg("BA101", base, base.Add(time.Hour), 100),
			leg("AF202", base.Add(2*time.Hour), base.Add(time.Hour+30*time.Minute), 50),
			leg("KL303", base.Add(3*time.Hour), base.Add(4*time.Hour), 75),
		},
	}

	d, err := Route(result)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Cost sums every leg, flagged or not.
	if d.TotalCost != 225 {
		t.Errorf("Expected total cost 225, got %v", d.TotalCost)
	}

	if d.Legs[0].Valid != true || d.Legs[1].Valid != false || d.Legs[2].Valid != true {
		t.Errorf("Expected leg validity [true false true], got [%v %v %v]",
			d.Legs[0].Valid, d.Legs[1].Valid, d.Legs[2].Valid)
	}

	// Route-level duration is still positive, so the route remains valid.
	if !d.Valid {
		t.Error("Expected route to stay valid with one flagged leg")
	}
}

func TestRoute_NegativeTotalDuration(t *testing.T) {
	result := dtos.RouteResult{
		Status: dtos.RouteStatusFound,
		Path: []dtos.Leg{
			leg("BA101", base, base.Add(-2*time.Hour), 100),
		},
	}

	d, err := Route(result)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if d.Valid {
		t.Error("Expected route to be invalid")
	}

	if d.Notice != constants.MsgRouteDataErr {
		t.Errorf("Expected data error notice, got %q", d.Notice)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{90 * time.Minute, "1h 30m"},
		{59*time.Minute + 59*time.Second, "0h 59m"},
		{25 * time.Hour, "25h 0m"},
		{0, "0h 0m"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	if got := FormatCost(199.999); got != "200.00" {
		t.Errorf("Expected 200.00, got %s", got)
	}
	if got := FormatCost(0); got != "0.00" {
		t.Errorf("Expected 0.00, got %s", got)
	}
}
