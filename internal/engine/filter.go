package engine

import (
	"fmt"
	"strings"

	"workspace-finder-backend/internal/dataset"
)

// MarketingZoneName is the zone resolved for the "marketing team" proximity
// target, the only proximity target this version implements.
const MarketingZoneName = "Marketing Zone"

const marketingProximityTarget = "marketing team"

// FilterDesks narrows the desk set through the fixed filter chain: type,
// floor, then proximity. Each step runs over the previous step's output and
// appends one trace entry, so the trace reads as an audit log of the
// narrowing. The input slice is never mutated; candidates is always a fresh
// slice and a subset of desks.
func FilterDesks(desks []dataset.Desk, spec FilterSpec, spaces []dataset.Space) ([]dataset.Desk, []string) {
	candidates := make([]dataset.Desk, len(desks))
	copy(candidates, desks)

	trace := []string{fmt.Sprintf("starting with %d total desks", len(candidates))}

	if spec.DeskType != "" {
		candidates = keep(candidates, func(d dataset.Desk) bool { return d.Type == spec.DeskType })
		trace = append(trace, fmt.Sprintf("filtered by type '%s': %d remaining", spec.DeskType, len(candidates)))
	}

	if spec.Floor != nil {
		floor := *spec.Floor
		candidates = keep(candidates, func(d dataset.Desk) bool { return d.Floor == floor })
		trace = append(trace, fmt.Sprintf("filtered by floor '%d': %d remaining", floor, len(candidates)))
	}

	switch {
	case strings.EqualFold(spec.ProximityTarget, marketingProximityTarget):
		areaIDs := ResolveZoneAreas(spaces, MarketingZoneName)
		if len(areaIDs) == 0 {
			trace = append(trace, fmt.Sprintf("warning: could not find areas associated with '%s'; skipping proximity filter", MarketingZoneName))
			break
		}
		members := make(map[string]struct{}, len(areaIDs))
		for _, id := range areaIDs {
			members[id] = struct{}{}
		}
		candidates = keep(candidates, func(d dataset.Desk) bool {
			_, ok := members[d.AreaID]
			return ok
		})
		trace = append(trace, fmt.Sprintf("filtered by proximity to 'marketing team' (areas: %s): %d remaining",
			strings.Join(areaIDs, ", "), len(candidates)))
	case spec.ProximityTarget != "":
		trace = append(trace, fmt.Sprintf("note: proximity filter for '%s' not implemented", spec.ProximityTarget))
	}

	return candidates, trace
}

func keep(desks []dataset.Desk, pred func(dataset.Desk) bool) []dataset.Desk {
	kept := make([]dataset.Desk, 0, len(desks))
	for _, d := range desks {
		if pred(d) {
			kept = append(kept, d)
		}
	}
	return kept
}
