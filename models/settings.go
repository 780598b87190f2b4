package models

import "time"

// SettingsEntry is one keyed configuration block, stored as a JSON blob.
// The typed shapes live in the settings package and are validated at that
// boundary.
type SettingsEntry struct {
	Key       string    `json:"key" gorm:"primaryKey;column:key"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
