package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexString is a string that also accepts a JSON number when decoding. The
// language model emits the floor field either way ("3rd" or 3).
type FlexString string

// UnmarshalJSON accepts a JSON string, number, or null.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("floor must be a string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// StructuredCriteria is the loosely-typed record produced by the NLP query
// parser. Every field is optional; an absent field means no constraint.
type StructuredCriteria struct {
	DeskType          string     `json:"desk_type,omitempty"`
	LocationProximity string     `json:"location_proximity,omitempty"`
	Floor             FlexString `json:"floor,omitempty"`
	TimeRequest       string     `json:"time_request,omitempty"`
	SpecificFeatures  []string   `json:"specific_features,omitempty"`
}

// FilterSpec is the strict filter specification derived from a
// StructuredCriteria. A nil Floor means no floor constraint.
type FilterSpec struct {
	DeskType        string   `json:"desk_type,omitempty"`
	Floor           *int     `json:"floor,omitempty"`
	ProximityTarget string   `json:"proximity_target,omitempty"`
	TimeRequest     string   `json:"time_request"`
	Features        []string `json:"features,omitempty"` // informational only, never filtered on
}

// Normalize converts the loosely-typed criteria into a FilterSpec. Fields
// that cannot be interpreted degrade to "no constraint" with a warning
// rather than failing the query.
func Normalize(c StructuredCriteria) (FilterSpec, []string) {
	var warnings []string

	spec := FilterSpec{
		DeskType:        c.DeskType,
		ProximityTarget: c.LocationProximity,
		TimeRequest:     c.TimeRequest,
		Features:        c.SpecificFeatures,
	}
	if spec.TimeRequest == "" {
		spec.TimeRequest = "now"
	}

	if c.Floor != "" {
		if floor, ok := parseFloor(string(c.Floor)); ok {
			spec.Floor = &floor
		} else {
			warnings = append(warnings, fmt.Sprintf("could not parse floor %q as a number", string(c.Floor)))
		}
	}

	return spec, warnings
}

// parseFloor extracts the floor number from free text like "3rd" or
// "2nd floor" by concatenating every ASCII digit in order.
func parseFloor(raw string) (int, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
