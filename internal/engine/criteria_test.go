package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFloor(t *testing.T) {
	testCases := []struct {
		name          string
		floor         string
		expectFloor   *int
		expectWarning bool
	}{
		{
			name:        "Ordinal suffix",
			floor:       "3rd",
			expectFloor: intPtr(3),
		},
		{
			name:        "Ordinal with word",
			floor:       "2nd floor",
			expectFloor: intPtr(2),
		},
		{
			name:        "Plain number",
			floor:       "4",
			expectFloor: intPtr(4),
		},
		{
			name:        "Absent",
			floor:       "",
			expectFloor: nil,
		},
		{
			name:          "No digits",
			floor:         "abc",
			expectFloor:   nil,
			expectWarning: true,
		},
		{
			name:        "Digits scattered through text",
			floor:       "floor 1, wing 2",
			expectFloor: intPtr(12),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec, warnings := Normalize(StructuredCriteria{Floor: FlexString(tc.floor)})
			if tc.expectFloor == nil {
				assert.Nil(t, spec.Floor)
			} else {
				require.NotNil(t, spec.Floor)
				assert.Equal(t, *tc.expectFloor, *spec.Floor)
			}
			if tc.expectWarning {
				assert.NotEmpty(t, warnings)
			} else {
				assert.Empty(t, warnings)
			}
		})
	}
}

func TestNormalizeDefaultsAndPassthrough(t *testing.T) {
	spec, warnings := Normalize(StructuredCriteria{
		DeskType:          "standing",
		LocationProximity: "marketing team",
		SpecificFeatures:  []string{"dual-monitor"},
	})

	assert.Empty(t, warnings)
	assert.Equal(t, "standing", spec.DeskType)
	assert.Equal(t, "marketing team", spec.ProximityTarget)
	assert.Equal(t, "now", spec.TimeRequest, "time request should default to 'now'")
	assert.Equal(t, []string{"dual-monitor"}, spec.Features)
	assert.Nil(t, spec.Floor)
}

func TestStructuredCriteriaFloorDecoding(t *testing.T) {
	var fromString StructuredCriteria
	require.NoError(t, json.Unmarshal([]byte(`{"floor": "3rd"}`), &fromString))
	assert.Equal(t, FlexString("3rd"), fromString.Floor)

	var fromNumber StructuredCriteria
	require.NoError(t, json.Unmarshal([]byte(`{"floor": 3}`), &fromNumber))
	assert.Equal(t, FlexString("3"), fromNumber.Floor)

	var fromNull StructuredCriteria
	require.NoError(t, json.Unmarshal([]byte(`{"floor": null}`), &fromNull))
	assert.Equal(t, FlexString(""), fromNull.Floor)
}

func intPtr(n int) *int {
	return &n
}
