package engine

import (
	"fmt"

	"workspace-finder-backend/internal/dataset"
)

// Result is the complete outcome of one workspace query: the normalized
// criteria, both audit traces, the surviving desk lists in filter order, and
// the top recommendation. An empty Available list is a normal outcome, not
// an error.
type Result struct {
	Spec              FilterSpec      `json:"criteria"`
	Warnings          []string        `json:"warnings,omitempty"`
	FilterTrace       []string        `json:"filter_trace"`
	Candidates        []dataset.Desk  `json:"candidates"`
	AvailabilityTrace []string        `json:"availability_trace"`
	Available         []dataset.Desk  `json:"available"`
	Recommendation    *Recommendation `json:"recommendation,omitempty"`
}

// Recommendation is the first available desk together with the reason it
// was judged available.
type Recommendation struct {
	Desk   dataset.Desk `json:"desk"`
	Reason string       `json:"reason"`
}

// Run executes one query against an immutable snapshot: normalize the
// criteria, narrow the desk set through the filter chain, evaluate each
// candidate's availability, and pick the first available desk. Run never
// mutates the bundle; concurrent calls against the same snapshot are safe.
func Run(bundle *dataset.Bundle, criteria StructuredCriteria) Result {
	spec, warnings := Normalize(criteria)

	candidates, filterTrace := FilterDesks(bundle.Desks, spec, bundle.Spaces)

	window := ParseWindow(spec.TimeRequest)

	available := make([]dataset.Desk, 0, len(candidates))
	reasons := make(map[string]string, len(candidates))
	availabilityTrace := make([]string, 0, len(candidates))
	for _, desk := range candidates {
		ok, reason := EvaluateDesk(desk, window, bundle.Forecast, bundle.Policies)
		availabilityTrace = append(availabilityTrace,
			fmt.Sprintf("desk %s: available = %t; reason: %s", desk.ID, ok, reason))
		if ok {
			available = append(available, desk)
			reasons[desk.ID] = reason
		}
	}

	result := Result{
		Spec:              spec,
		Warnings:          warnings,
		FilterTrace:       filterTrace,
		Candidates:        candidates,
		AvailabilityTrace: availabilityTrace,
		Available:         available,
	}

	// The recommendation is simply the first available desk in filter
	// order. There is no scoring; insertion order is the contract.
	if len(available) > 0 {
		result.Recommendation = &Recommendation{
			Desk:   available[0],
			Reason: reasons[available[0].ID],
		}
	}

	return result
}
