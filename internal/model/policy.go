package model

// Policy is a workplace policy. ThresholdPercent is populated at dataset
// load time from the description text.
type Policy struct {
	ID               string `gorm:"primaryKey;size:32" json:"id"`
	Description      string `gorm:"size:512;not null" json:"description"`
	ThresholdPercent int    `gorm:"not null" json:"threshold_percent"`
}
