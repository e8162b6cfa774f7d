// Package gorm provides GORM-based persistence for pantry storage
package gorm

import "time"

// PantryItemModel is the GORM model for a stored pantry item. Items are
// scoped to a caller-supplied session identifier and unique by name
// within a session.
type PantryItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"size:64;index:idx_pantry_session_name,unique;not null"`
	Name      string `gorm:"size:200;index:idx_pantry_session_name,unique;not null"`
	Quantity  string `gorm:"size:50"`
	AddedAt   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (PantryItemModel) TableName() string {
	return "pantry_items"
}
