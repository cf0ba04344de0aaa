package model

// ForecastEntry is one flattened next-day occupancy prediction: an area,
// a named time slot, and a percentage. Sparse slots simply have no row.
type ForecastEntry struct {
	AreaID  string `gorm:"primaryKey;size:64" json:"area_id"`
	Slot    string `gorm:"primaryKey;size:16" json:"slot"`
	Percent int    `gorm:"not null" json:"percent"`
}
