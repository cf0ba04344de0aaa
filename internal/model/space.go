package model

// Space is a node of the building hierarchy as persisted for browsing.
// Zones are top-level; areas reference their zone through ParentID.
type Space struct {
	ID       string  `gorm:"primaryKey;size:64" json:"id"`
	Name     string  `gorm:"size:128;not null;index" json:"name"`
	Type     string  `gorm:"size:32;not null;index" json:"type"`
	ParentID *string `gorm:"size:64;index" json:"parent_id,omitempty"`
}
