package workers

import (
	"context"
	"time"

	"flightdeck/routeview/internal/logging"
	"flightdeck/routeview/internal/metrics"
	"flightdeck/routeview/internal/providers"
	"flightdeck/routeview/internal/viewstate"
)

// ValidationRequest asks for a background conflict check of one search
// cycle's flight numbers.
type ValidationRequest struct {
	SessionID     string
	Generation    uint64
	FlightNumbers []string
}

// ValidationQueue feeds the conflict worker. Enqueueing is non-blocking:
// a full queue drops the request, because the check is best effort and must
// never hold up the results flow.
var ValidationQueue = make(chan ValidationRequest, 100)

// Enqueue offers a validation request to the worker without blocking.
func Enqueue(req ValidationRequest) bool {
	select {
	case ValidationQueue <- req:
		return true
	default:
		logging.Warn("Validation queue full, dropping conflict check",
			"session_id", req.SessionID,
			"generation", req.Generation,
		)
		return false
	}
}

// ConflictWorker consumes validation requests, calls the conflict validator,
// and dispatches the outcome back into the view store. Failures are logged
// and swallowed; the results view never learns about them. The reducer
// discards responses whose generation went stale while the check ran.
func ConflictWorker(queue <-chan ValidationRequest, validator providers.ConflictValidator, store *viewstate.Store, reg *metrics.MetricsRegistry) {
	for req := range queue {
		log := logging.WithSearch(req.SessionID, req.Generation)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		validation, _, err := validator.ValidateFlights(ctx, req.FlightNumbers)
		cancel()

		if err != nil {
			reg.ConflictChecksTotal.WithLabelValues("error").Inc()
			log.Warnw("Conflict validation failed, results stay as rendered",
				"error", err.Error(),
			)
			continue
		}

		result := "clean"
		if validation.ConflictsDetected {
			result = "conflicts"
		}
		reg.ConflictChecksTotal.WithLabelValues(result).Inc()

		_, effects := store.Dispatch(req.SessionID, viewstate.ConflictsDetected{
			Generation: req.Generation,
			Validation: *validation,
		})
		for _, effect := range effects {
			if _, stale := effect.(viewstate.DiscardedStale); stale {
				reg.StaleChecksDiscarded.Inc()
				log.Infow("Discarded conflict validation for stale generation")
			}
		}
	}
}

// InitWorkers starts the background workers.
func InitWorkers(validator providers.ConflictValidator, store *viewstate.Store, reg *metrics.MetricsRegistry) {
	go ConflictWorker(ValidationQueue, validator, store, reg)
	logging.Info("Conflict validation worker started", "queue_size", cap(ValidationQueue))
}
