package dataset

import "encoding/json"

// Space is a node in the building's spatial hierarchy. Zones sit at the top;
// areas reference their zone through ParentID.
type Space struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parent_id,omitempty"`
}

// Desk describes a single bookable desk as it appears in desks.json. The
// VergesenseAreaID is the sensor vendor's area identifier used for forecast
// lookups; it may differ from AreaID.
type Desk struct {
	ID                  string   `json:"id"`
	Type                string   `json:"type"`
	Floor               int      `json:"floor"`
	AreaID              string   `json:"area_id"`
	Zone                string   `json:"zone"`
	Status              string   `json:"status"`
	VergesenseAreaID    string   `json:"vergesense_area_id"`
	LocationDescription string   `json:"location_description"`
	Features            []string `json:"features"`
}

// Desk status values as they appear in the dataset.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

// DayForecast holds the predicted occupancy percentages for the named time
// slots of a single day. A nil slot means no forecast exists for it, which
// is distinct from a zero-percent forecast.
type DayForecast struct {
	Morning   *int `json:"morning,omitempty"`
	Afternoon *int `json:"afternoon,omitempty"`
	Evening   *int `json:"evening,omitempty"`
}

// AreaForecast is the forecast record for one area.
type AreaForecast struct {
	NextDay DayForecast `json:"next_day"`
}

// Forecast maps a vergesense area identifier to its forecast record. The map
// is sparse: areas without sensor coverage simply have no entry.
type Forecast map[string]AreaForecast

// Policy is a workplace policy. ThresholdPercent is extracted from the
// description text at load time; policies whose description names no
// percentage carry the default of 80.
type Policy struct {
	ID               string `json:"id"`
	Description      string `json:"description"`
	ThresholdPercent int    `json:"threshold_percent"`
}

// Bundle is one immutable snapshot of all loaded datasets. The engine only
// ever reads from a Bundle; reloading produces a fresh one.
type Bundle struct {
	Spaces      []Space
	Desks       []Desk
	Forecast    Forecast
	Policies    []Policy
	Preferences json.RawMessage // employee_preferences.json, loaded for future use
}
