package lookup

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/logging"
	"flightdeck/routeview/internal/models/dtos"
	"flightdeck/routeview/internal/providers"
)

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Directory resolves airline codes, airport codes, and airport coordinates
// to display values. Every resolver is total: a miss falls back instead of
// failing, so a lookup can never block rendering.
type Directory struct {
	mu           sync.RWMutex
	airlineNames map[string]string
	airportNames map[string]string
	coordinates  map[string]Coordinate

	fetcher      providers.ConstantsFetcher
	refreshEvery time.Duration
	lastRefresh  time.Time
	group        singleflight.Group
}

// NewDirectory builds a Directory seeded from the static tables. fetcher may
// be nil, in which case the seeds are authoritative.
func NewDirectory(fetcher providers.ConstantsFetcher, refreshEvery time.Duration) *Directory {
	d := &Directory{
		airlineNames: make(map[string]string, len(seedAirlineNames)),
		airportNames: make(map[string]string, len(seedAirportNames)),
		coordinates:  make(map[string]Coordinate, len(seedAirportCoordinates)),
		fetcher:      fetcher,
		refreshEvery: refreshEvery,
	}
	for k, v := range seedAirlineNames {
		d.airlineNames[k] = v
	}
	for k, v := range seedAirportNames {
		d.airportNames[k] = v
	}
	for k, v := range seedAirportCoordinates {
		d.coordinates[k] = v
	}
	return d
}

// AirlineName resolves an airline code to a display name. Unknown codes fall
// back to the raw code; an empty code falls back to "Unknown Airline".
func (d *Directory) AirlineName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return constants.FallbackAirlineName
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if name, ok := d.airlineNames[code]; ok {
		return name
	}
	return code
}

// AirportName resolves an airport code to a display name, falling back to
// the code itself.
func (d *Directory) AirportName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))

	d.mu.RLock()
	defer d.mu.RUnlock()
	if name, ok := d.airportNames[code]; ok {
		return name
	}
	return code
}

// Coordinates resolves an airport code to its map position. The second
// return is false when no mapping exists; callers skip the point rather
// than abort drawing.
func (d *Directory) Coordinates(code string) (Coordinate, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))

	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.coordinates[code]
	return c, ok
}

// EnsureFresh refreshes the tables from the backend constants endpoint when
// they have gone stale. Best effort: failures are logged and the current
// tables stay in place. Concurrent callers share one fetch.
func (d *Directory) EnsureFresh(ctx context.Context) {
	if d.fetcher == nil {
		return
	}

	d.mu.RLock()
	fresh := time.Since(d.lastRefresh) < d.refreshEvery
	d.mu.RUnlock()
	if fresh {
		return
	}

	_, err, _ := d.group.Do("constants", func() (interface{}, error) {
		resp, _, err := d.fetcher.GetConstants(ctx)
		if err != nil {
			return nil, err
		}
		d.apply(resp)
		return nil, nil
	})
	if err != nil {
		logging.Warn("Lookup table refresh failed, keeping current tables", "error", err.Error())
	}
}

func (d *Directory) apply(resp *dtos.ConstantsResponse) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for code, name := range resp.AirlineNames {
		d.airlineNames[strings.ToUpper(code)] = name
	}
	for code, name := range resp.AirportNames {
		d.airportNames[strings.ToUpper(code)] = name
	}
	for code, pair := range resp.AirportCoordinates {
		if len(pair) != 2 {
			continue
		}
		d.coordinates[strings.ToUpper(code)] = Coordinate{Lat: pair[0], Lng: pair[1]}
	}
	d.lastRefresh = time.Now()
}
