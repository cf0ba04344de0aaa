package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace-finder-backend/internal/dataset"
)

// scenarioBundle builds the dataset used by the end-to-end scenarios: one
// standing desk on floor 3 in a marketing-zone area, plus decoys that each
// fail one filter.
func scenarioBundle(afternoon *int) *dataset.Bundle {
	return &dataset.Bundle{
		Spaces: []dataset.Space{
			{ID: "Z-MKT", Name: "Marketing Zone", Type: "zone"},
			{ID: "A-301", Name: "Marketing North", Type: "area", ParentID: "Z-MKT"},
		},
		Desks: []dataset.Desk{
			{ID: "D-REG", Type: "regular", Floor: 3, AreaID: "A-301", Status: dataset.StatusAvailable, VergesenseAreaID: "VS-301"},
			{ID: "D-FLR2", Type: "standing", Floor: 2, AreaID: "A-301", Status: dataset.StatusAvailable, VergesenseAreaID: "VS-301"},
			{ID: "D-ELSE", Type: "standing", Floor: 3, AreaID: "A-999", Status: dataset.StatusAvailable, VergesenseAreaID: "VS-999"},
			{ID: "D-MKT", Type: "standing", Floor: 3, AreaID: "A-301", Status: dataset.StatusAvailable, VergesenseAreaID: "VS-301"},
		},
		Forecast: func() dataset.Forecast {
			if afternoon == nil {
				return dataset.Forecast{}
			}
			return dataset.Forecast{"VS-301": {NextDay: dataset.DayForecast{Afternoon: afternoon}}}
		}(),
		Policies: []dataset.Policy{
			{ID: "POL-005", Description: "Area occupancy is limited to 80% of capacity.", ThresholdPercent: 80},
		},
	}
}

func scenarioCriteria(timeRequest string) StructuredCriteria {
	return StructuredCriteria{
		DeskType:          "standing",
		Floor:             "3rd",
		LocationProximity: "marketing team",
		TimeRequest:       timeRequest,
	}
}

func TestRun_ScenarioA_ForecastBelowThreshold(t *testing.T) {
	value := 65
	result := Run(scenarioBundle(&value), scenarioCriteria("tomorrow afternoon"))

	require.Len(t, result.Available, 1)
	assert.Equal(t, "D-MKT", result.Available[0].ID)
	require.NotNil(t, result.Recommendation)
	assert.Equal(t, "D-MKT", result.Recommendation.Desk.ID)
	assert.Contains(t, result.Recommendation.Reason, "65")
	assert.Contains(t, result.Recommendation.Reason, "80")
}

func TestRun_ScenarioB_ForecastAtOrAboveThreshold(t *testing.T) {
	value := 85
	result := Run(scenarioBundle(&value), scenarioCriteria("tomorrow afternoon"))

	assert.Empty(t, result.Available)
	assert.Nil(t, result.Recommendation)
	require.NotEmpty(t, result.AvailabilityTrace)
	assert.Contains(t, result.AvailabilityTrace[0], "meets or exceeds threshold")
}

func TestRun_ScenarioC_NoForecastData(t *testing.T) {
	result := Run(scenarioBundle(nil), scenarioCriteria("tomorrow afternoon"))

	assert.Empty(t, result.Available)
	assert.Nil(t, result.Recommendation)
	require.NotEmpty(t, result.AvailabilityTrace)
	assert.Contains(t, result.AvailabilityTrace[0], "no 'afternoon' forecast data")
}

func TestRun_ScenarioD_Now(t *testing.T) {
	value := 65
	result := Run(scenarioBundle(&value), scenarioCriteria("now"))

	require.Len(t, result.Available, 1)
	assert.Equal(t, "D-MKT", result.Available[0].ID)
	assert.Equal(t, "desk is currently available", result.Recommendation.Reason)
}

func TestRun_FilterTraceShape(t *testing.T) {
	value := 65
	result := Run(scenarioBundle(&value), scenarioCriteria("tomorrow afternoon"))

	require.Len(t, result.FilterTrace, 4)
	assert.Equal(t, "starting with 4 total desks", result.FilterTrace[0])
	assert.Len(t, result.Candidates, 1)
}

func TestRun_UnparseableFloorDegrades(t *testing.T) {
	value := 65
	criteria := scenarioCriteria("now")
	criteria.Floor = "penthouse"

	result := Run(scenarioBundle(&value), criteria)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "penthouse")
	// Floor constraint dropped: the floor-2 standing desk survives filtering.
	assert.Contains(t, deskIDs(result.Candidates), "D-FLR2")
}

func TestRun_NoMatchIsNormalOutcome(t *testing.T) {
	value := 65
	criteria := StructuredCriteria{DeskType: "treadmill", TimeRequest: "now"}

	result := Run(scenarioBundle(&value), criteria)

	assert.Empty(t, result.Candidates)
	assert.Empty(t, result.Available)
	assert.Empty(t, result.AvailabilityTrace)
	assert.Nil(t, result.Recommendation)
}
