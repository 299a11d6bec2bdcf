package viewstate

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/models/dtos"
)

// OverlayBuilder turns one route into map primitives. Injected so the store
// stays free of lookup-table wiring.
type OverlayBuilder func(criterion, start string, legs []dtos.Leg) *dtos.MapOverlay

// Store holds per-session ViewStates. States are process-local and expire
// with the session TTL; all mutation goes through Dispatch under one lock,
// which gives the single-threaded transition semantics the controller
// assumes.
type Store struct {
	mu       sync.Mutex
	sessions *cache.Cache
	ttl      time.Duration
	build    OverlayBuilder
}

// NewStore creates a session store with the given TTL.
func NewStore(ttl time.Duration, build OverlayBuilder) *Store {
	return &Store{
		sessions: cache.New(ttl, 2*ttl),
		ttl:      ttl,
		build:    build,
	}
}

// Dispatch applies one action to a session's state and returns the updated
// snapshot plus the transition's effects. RedrawMap effects are already
// executed (the overlay lives in the state); EnqueueValidation and
// DiscardedStale are the caller's to act on.
func (st *Store) Dispatch(sessionID string, action Action) (dtos.StateSnapshot, []Effect) {
	st.mu.Lock()
	defer st.mu.Unlock()

	state := st.get(sessionID)
	effects := state.apply(action)

	for _, effect := range effects {
		redraw, ok := effect.(RedrawMap)
		if !ok {
			continue
		}
		state.Overlay = st.buildOverlay(state, redraw.Criterion)
	}

	st.touch(sessionID, state)
	return state.snapshot(), effects
}

// Snapshot returns a session's current state without mutating it.
func (st *Store) Snapshot(sessionID string) dtos.StateSnapshot {
	st.mu.Lock()
	defer st.mu.Unlock()

	state := st.get(sessionID)
	st.touch(sessionID, state)
	return state.snapshot()
}

// Generation returns a session's current generation token.
func (st *Store) Generation(sessionID string) uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.get(sessionID).Generation
}

// buildOverlay redraws the layer for the criterion, or clears it when the
// criterion has no drawable route (not found, or flagged as a data error).
func (st *Store) buildOverlay(state *ViewState, criterion string) *dtos.MapOverlay {
	pane := state.paneFor(criterion)
	if pane == nil || pane.Kind != constants.PaneKindRoute {
		return nil
	}
	result := state.Results[criterion]
	return st.build(criterion, state.Start, result.Path)
}

// get returns the session's state, creating a fresh Empty one on first use
// or after expiry. Callers hold the lock.
func (st *Store) get(sessionID string) *ViewState {
	if v, found := st.sessions.Get(sessionID); found {
		if state, ok := v.(*ViewState); ok {
			return state
		}
	}
	state := &ViewState{Phase: PhaseEmpty}
	st.sessions.Set(sessionID, state, st.ttl)
	return state
}

// touch slides the session's expiry on activity.
func (st *Store) touch(sessionID string, state *ViewState) {
	st.sessions.Set(sessionID, state, st.ttl)
}
