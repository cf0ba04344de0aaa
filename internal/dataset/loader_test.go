package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeValidDatasets(t *testing.T, dir string) {
	writeDataset(t, dir, SpacesFile, `{"spaces": [
		{"id": "Z-MKT", "name": "Marketing Zone", "type": "zone"},
		{"id": "A-301", "name": "Marketing North", "type": "area", "parent_id": "Z-MKT"}
	]}`)
	writeDataset(t, dir, DesksFile, `{"desks": [
		{"id": "D-1", "type": "standing", "floor": 3, "area_id": "A-301", "zone": "Marketing Zone",
		 "status": "available", "vergesense_area_id": "VS-301",
		 "location_description": "North window row", "features": ["dual-monitor"]}
	]}`)
	writeDataset(t, dir, OccupancyFile, `{"forecast": {
		"VS-301": {"next_day": {"morning": 40, "afternoon": 65}}
	}}`)
	writeDataset(t, dir, PoliciesFile, `{"policies": [
		{"id": "POL-002", "description": "Desks must be sanitized between uses."},
		{"id": "POL-005", "description": "Area occupancy is limited to 80% of capacity."}
	]}`)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeValidDatasets(t, dir)

	bundle, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, bundle.Spaces, 2)
	assert.Equal(t, "Z-MKT", bundle.Spaces[1].ParentID)

	require.Len(t, bundle.Desks, 1)
	desk := bundle.Desks[0]
	assert.Equal(t, "D-1", desk.ID)
	assert.Equal(t, 3, desk.Floor)
	assert.Equal(t, []string{"dual-monitor"}, desk.Features)

	forecast, ok := bundle.Forecast["VS-301"]
	require.True(t, ok)
	require.NotNil(t, forecast.NextDay.Afternoon)
	assert.Equal(t, 65, *forecast.NextDay.Afternoon)
	assert.Nil(t, forecast.NextDay.Evening, "absent slot must stay nil, not zero")

	require.Len(t, bundle.Policies, 2)
	assert.Nil(t, bundle.Preferences)
}

func TestLoad_PolicyThresholdExtraction(t *testing.T) {
	dir := t.TempDir()
	writeValidDatasets(t, dir)
	writeDataset(t, dir, PoliciesFile, `{"policies": [
		{"id": "POL-005", "description": "Area occupancy is limited to 80% of capacity."},
		{"id": "POL-007", "description": "Keep meeting rooms under 60% utilization."},
		{"id": "POL-002", "description": "Desks must be sanitized between uses."}
	]}`)

	bundle, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 80, bundle.Policies[0].ThresholdPercent)
	assert.Equal(t, 60, bundle.Policies[1].ThresholdPercent)
	assert.Equal(t, DefaultThresholdPercent, bundle.Policies[2].ThresholdPercent,
		"descriptions without a percentage get the default threshold")
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	dir := t.TempDir()
	writeValidDatasets(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, OccupancyFile)))

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeValidDatasets(t, dir)
	writeDataset(t, dir, DesksFile, `{"desks": [`)

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestLoad_OptionalPreferences(t *testing.T) {
	dir := t.TempDir()
	writeValidDatasets(t, dir)
	writeDataset(t, dir, PreferencesFile, `{"preferences": [{"employee_id": "E-1", "preferred_floor": 3}]}`)

	bundle, err := Load(dir)
	require.NoError(t, err)
	assert.JSONEq(t, `{"preferences": [{"employee_id": "E-1", "preferred_floor": 3}]}`, string(bundle.Preferences))
}

func TestExtractThreshold(t *testing.T) {
	assert.Equal(t, 80, extractThreshold("Limit area occupancy to 80% of capacity"))
	assert.Equal(t, 55, extractThreshold("55% maximum"))
	assert.Equal(t, DefaultThresholdPercent, extractThreshold("no numbers here"))
}
