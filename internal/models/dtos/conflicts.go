package dtos

// ValidateFlightsRequest asks the conflict validator to check one specific
// set of flight numbers.
type ValidateFlightsRequest struct {
	FlightNumbers []string `json:"flight_numbers"`
}

// ConflictedFlight is one failing flight with its reason.
type ConflictedFlight struct {
	Flight string `json:"flight"`
	Reason string `json:"reason"`
}

// ConflictValidation is the validator's answer for one flight-number set.
type ConflictValidation struct {
	ConflictsDetected bool               `json:"conflicts_detected"`
	ConflictedFlights []ConflictedFlight `json:"conflicted_flights"`
}

// ConflictBreakdown counts conflicts by type.
type ConflictBreakdown struct {
	AircraftConflicts    int `json:"aircraft_conflicts"`
	RunwayConflicts      int `json:"runway_conflicts"`
	GateConflicts        int `json:"gate_conflicts"`
	PositioningConflicts int `json:"positioning_conflicts"`
}

// ConflictSummary is the schedule-wide validation tally.
type ConflictSummary struct {
	TotalFlights      int               `json:"total_flights"`
	Successful        int               `json:"successful"`
	Failed            int               `json:"failed"`
	ConflictBreakdown ConflictBreakdown `json:"conflict_breakdown"`
}

// ConflictReport is the full schedule validation report.
type ConflictReport struct {
	Summary       ConflictSummary `json:"summary"`
	FailedFlights []string        `json:"failed_flights"`
	Conflicts     []string        `json:"conflicts"`
}
