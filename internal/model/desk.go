package model

import "time"

// Desk is the persisted form of a desk dataset record.
type Desk struct {
	ID                  string   `gorm:"primaryKey;size:64" json:"id"`
	Type                string   `gorm:"size:32;not null;index" json:"type"`
	Floor               int      `gorm:"not null;index" json:"floor"`
	AreaID              string   `gorm:"size:64;not null;index" json:"area_id"`
	Zone                string   `gorm:"size:128" json:"zone"`
	Status              string   `gorm:"size:32;not null" json:"status"`
	VergesenseAreaID    string   `gorm:"size:64" json:"vergesense_area_id"`
	LocationDescription string   `gorm:"size:256" json:"location_description"`
	Features            []string `gorm:"serializer:json" json:"features"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
