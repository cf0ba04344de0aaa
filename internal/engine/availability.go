package engine

import (
	"fmt"

	"workspace-finder-backend/internal/dataset"
)

// CapacityPolicyID identifies the area capacity limit policy consulted for
// forecast-based availability decisions.
const CapacityPolicyID = "POL-005"

// EvaluateDesk decides whether a single desk is likely available for the
// requested window. The decision is pure: it combines the desk's current
// status, the occupancy forecast, and the capacity policy threshold, and
// carries no state between desks.
func EvaluateDesk(desk dataset.Desk, window Window, forecast dataset.Forecast, policies []dataset.Policy) (bool, string) {
	// Maintenance blocks regardless of the requested window.
	if desk.Status == dataset.StatusMaintenance {
		return false, "desk is under maintenance"
	}

	switch window.Kind {
	case WindowTomorrowAfternoon:
		return evaluateTomorrowAfternoon(desk, forecast, policies)
	case WindowNow:
		return evaluateNow(desk)
	default:
		return false, fmt.Sprintf("availability check for '%s' not implemented", window.Raw)
	}
}

func evaluateTomorrowAfternoon(desk dataset.Desk, forecast dataset.Forecast, policies []dataset.Policy) (bool, string) {
	areaID := desk.VergesenseAreaID
	value := forecast[areaID].NextDay.Afternoon
	if value == nil {
		// No forecast for the area/slot. Fail closed: no data is treated as
		// unavailable, not as an empty area.
		return false, fmt.Sprintf("no 'afternoon' forecast data available for area %s tomorrow", areaID)
	}

	threshold := capacityThreshold(policies)
	if *value >= threshold {
		return false, fmt.Sprintf("area %s forecasted occupancy (%d%%) meets or exceeds threshold (%d%%) for tomorrow afternoon",
			areaID, *value, threshold)
	}

	// Below the threshold the desk is only probably free; there is no real
	// booking data behind this, so the caveat stays in the reason.
	return true, fmt.Sprintf("area %s forecast (%d%%) is below threshold (%d%%) for tomorrow afternoon; desk may be available",
		areaID, *value, threshold)
}

func evaluateNow(desk dataset.Desk) (bool, string) {
	if desk.Status == dataset.StatusAvailable {
		return true, "desk is currently available"
	}
	return false, fmt.Sprintf("desk status is currently '%s'", desk.Status)
}

// capacityThreshold resolves the occupancy threshold from the capacity
// limits policy. The lookup is performed on every evaluation so a future
// policy set with a different percentage takes effect without code changes;
// against the current dataset it always resolves to 80.
func capacityThreshold(policies []dataset.Policy) int {
	for _, p := range policies {
		if p.ID == CapacityPolicyID {
			if p.ThresholdPercent > 0 {
				return p.ThresholdPercent
			}
			break
		}
	}
	return dataset.DefaultThresholdPercent
}
