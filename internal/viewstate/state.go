package viewstate

import (
	"flightdeck/routeview/internal/constants"
	"flightdeck/routeview/internal/models/dtos"
)

// Phase is the controller's top-level state.
type Phase string

const (
	PhaseEmpty          Phase = "empty"
	PhaseResults        Phase = "results"
	PhaseResultsWarning Phase = "results_warning"
	PhaseConflictPanel  Phase = "conflict_panel"
)

// Panel names exposed in snapshots.
const (
	PanelResults   = "results"
	PanelConflicts = "conflicts"
)

// ViewState is the single mutable store for one session's results view.
// It is replaced logically on every new search (generation bump plus full
// reset) and mutated only through Dispatch transitions.
type ViewState struct {
	Generation uint64
	Phase      Phase

	Start   string
	Results dtos.ResultSet
	Panes   []dtos.Pane

	ActiveTab  string
	HasWarning bool
	Warning    *dtos.ConflictValidation
	Message    string
	Overlay    *dtos.MapOverlay
}

// Action is one controller input.
type Action interface{ isAction() }

// SearchStarted resets the state for a new search cycle and bumps the
// generation, semantically invalidating any in-flight validation.
type SearchStarted struct{}

// SearchCompleted delivers one search response. FlightNumbers is the
// distinct union across all found criteria, precomputed by the caller.
type SearchCompleted struct {
	Generation    uint64
	Start         string
	Results       dtos.ResultSet
	Panes         []dtos.Pane
	FlightNumbers []string
}

// TabSelected switches the active criterion tab.
type TabSelected struct{ Criterion string }

// ConflictsDetected delivers an asynchronous conflict validation tagged
// with the generation it was issued for.
type ConflictsDetected struct {
	Generation uint64
	Validation dtos.ConflictValidation
}

// PanelOpened shows the conflict report panel.
type PanelOpened struct{}

// PanelClosed hides the conflict report panel.
type PanelClosed struct{}

func (SearchStarted) isAction()     {}
func (SearchCompleted) isAction()   {}
func (TabSelected) isAction()       {}
func (ConflictsDetected) isAction() {}
func (PanelOpened) isAction()       {}
func (PanelClosed) isAction()       {}

// Effect is a declared side effect of a transition.
type Effect interface{ isEffect() }

// RedrawMap fires whenever a transition changed the active route pointer.
// The store executes it inline (the overlay is state); it is surfaced so
// callers can observe and count redraws.
type RedrawMap struct{ Criterion string }

// EnqueueValidation asks the caller to start a background conflict check.
type EnqueueValidation struct {
	Generation    uint64
	FlightNumbers []string
}

// DiscardedStale reports that an action carried an outdated generation and
// was dropped without touching the state.
type DiscardedStale struct{}

func (RedrawMap) isEffect()         {}
func (EnqueueValidation) isEffect() {}
func (DiscardedStale) isEffect()    {}

// apply is the reducer: (state, action) -> effects. Called under the store
// lock only.
func (s *ViewState) apply(action Action) []Effect {
	switch a := action.(type) {
	case SearchStarted:
		s.Generation++
		s.Phase = PhaseEmpty
		s.Start = ""
		s.Results = nil
		s.Panes = nil
		s.ActiveTab = ""
		s.HasWarning = false
		s.Warning = nil
		s.Message = ""
		s.Overlay = nil
		return nil

	case SearchCompleted:
		if a.Generation != s.Generation {
			return []Effect{DiscardedStale{}}
		}

		if !anyFound(a.Results) {
			// Zero found routes is a hard stop: guidance instead of an
			// empty results panel.
			s.Phase = PhaseEmpty
			s.Message = constants.MsgNoRoutesFound
			return nil
		}

		s.Phase = PhaseResults
		s.Start = a.Start
		s.Results = a.Results
		s.Panes = a.Panes
		s.ActiveTab = defaultTab(a.Results)

		effects := []Effect{RedrawMap{Criterion: s.ActiveTab}}
		if len(a.FlightNumbers) > 0 {
			effects = append(effects, EnqueueValidation{
				Generation:    s.Generation,
				FlightNumbers: a.FlightNumbers,
			})
		}
		return effects

	case TabSelected:
		if s.Results == nil {
			return nil
		}
		if _, ok := s.Results[a.Criterion]; !ok {
			return nil
		}
		if a.Criterion == s.ActiveTab {
			// Same active-route pointer, no redraw.
			return nil
		}
		s.ActiveTab = a.Criterion
		return []Effect{RedrawMap{Criterion: a.Criterion}}

	case ConflictsDetected:
		if a.Generation != s.Generation {
			return []Effect{DiscardedStale{}}
		}
		if s.Results == nil || !a.Validation.ConflictsDetected {
			return nil
		}
		if s.HasWarning {
			// Exactly one banner per search cycle.
			return nil
		}
		v := a.Validation
		s.HasWarning = true
		s.Warning = &v
		if s.Phase == PhaseResults {
			s.Phase = PhaseResultsWarning
		}
		return nil

	case PanelOpened:
		if s.Phase == PhaseConflictPanel {
			return nil
		}
		s.Phase = PhaseConflictPanel
		return nil

	case PanelClosed:
		if s.Phase != PhaseConflictPanel {
			return nil
		}
		// Return to the results only if a ResultSet is present; otherwise
		// the results panel stays hidden.
		switch {
		case s.Results == nil:
			s.Phase = PhaseEmpty
		case s.HasWarning:
			s.Phase = PhaseResultsWarning
		default:
			s.Phase = PhaseResults
		}
		return nil
	}

	return nil
}

func anyFound(results dtos.ResultSet) bool {
	for _, r := range results {
		if r.Found() {
			return true
		}
	}
	return false
}

func defaultTab(results dtos.ResultSet) string {
	for _, criterion := range constants.CriterionPriority {
		if _, ok := results[criterion]; ok {
			return criterion
		}
	}
	return ""
}

// paneFor returns the rendered pane for a criterion, nil when absent.
func (s *ViewState) paneFor(criterion string) *dtos.Pane {
	for i := range s.Panes {
		if s.Panes[i].Criterion == criterion {
			return &s.Panes[i]
		}
	}
	return nil
}

// snapshot projects the state into its client-facing form.
func (s *ViewState) snapshot() dtos.StateSnapshot {
	panel := PanelResults
	if s.Phase == PhaseConflictPanel {
		panel = PanelConflicts
	}

	return dtos.StateSnapshot{
		Generation:  s.Generation,
		Phase:       string(s.Phase),
		ActiveTab:   s.ActiveTab,
		ActivePanel: panel,
		Message:     s.Message,
		Panes:       s.Panes,
		Warning:     s.Warning,
		Overlay:     s.Overlay,
	}
}
