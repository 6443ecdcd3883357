package models

import "time"

// Preference is a persisted key-value blob. Values are UTF-8 JSON text
// stored verbatim under a fixed key, scoped to a user.
type Preference struct {
	UserID    string    `gorm:"primaryKey;type:uuid" json:"user_id"`
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fixed preference keys. Adding a key here requires a matching default
// record so old persisted blobs merge cleanly.
const (
	PrefKeyTheme      = "hela_theme"
	PrefKeyDashboard  = "hela_dashboard_settings"
	PrefKeySession    = "hela_user"
	PrefKeyOnboarding = "hela_onboarding"
)
