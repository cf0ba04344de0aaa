package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// Dataset file names inside the data directory.
const (
	SpacesFile      = "spaces.json"
	DesksFile       = "desks.json"
	OccupancyFile   = "occupancy.json"
	PoliciesFile    = "policies.json"
	PreferencesFile = "employee_preferences.json"
)

// DefaultThresholdPercent is the capacity threshold applied when a policy
// description names no explicit percentage.
const DefaultThresholdPercent = 80

var (
	// ErrNotFound indicates a required dataset file is missing.
	ErrNotFound = errors.New("dataset file not found")
	// ErrMalformed indicates a dataset file could not be decoded as JSON.
	ErrMalformed = errors.New("dataset file is not valid JSON")
)

var percentRe = regexp.MustCompile(`(\d+)%`)

type spacesDocument struct {
	Spaces []Space `json:"spaces"`
}

type desksDocument struct {
	Desks []Desk `json:"desks"`
}

type occupancyDocument struct {
	Forecast Forecast `json:"forecast"`
}

type policiesDocument struct {
	Policies []Policy `json:"policies"`
}

// Load reads all dataset files from dir and assembles them into a Bundle.
// The employee preferences file is optional; every other file is required
// and a failure on any of them aborts the whole load so a partially built
// snapshot never escapes.
func Load(dir string) (*Bundle, error) {
	var spaces spacesDocument
	if err := readJSON(filepath.Join(dir, SpacesFile), &spaces); err != nil {
		return nil, err
	}

	var desks desksDocument
	if err := readJSON(filepath.Join(dir, DesksFile), &desks); err != nil {
		return nil, err
	}

	var occupancy occupancyDocument
	if err := readJSON(filepath.Join(dir, OccupancyFile), &occupancy); err != nil {
		return nil, err
	}

	var policies policiesDocument
	if err := readJSON(filepath.Join(dir, PoliciesFile), &policies); err != nil {
		return nil, err
	}
	for i := range policies.Policies {
		policies.Policies[i].ThresholdPercent = extractThreshold(policies.Policies[i].Description)
	}

	bundle := &Bundle{
		Spaces:   spaces.Spaces,
		Desks:    desks.Desks,
		Forecast: occupancy.Forecast,
		Policies: policies.Policies,
	}
	if bundle.Forecast == nil {
		bundle.Forecast = Forecast{}
	}

	prefs, err := os.ReadFile(filepath.Join(dir, PreferencesFile))
	if err == nil && json.Valid(prefs) {
		bundle.Preferences = prefs
	}

	return bundle, nil
}

// extractThreshold pulls a capacity percentage out of a policy description,
// e.g. "Limit area occupancy to 80% of capacity" yields 80.
func extractThreshold(description string) int {
	m := percentRe.FindStringSubmatch(description)
	if m == nil {
		return DefaultThresholdPercent
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultThresholdPercent
	}
	return n
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return nil
}
