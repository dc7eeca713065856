package models

import "time"

// Settings are the four per-account toggles from the profile settings screen.
// A missing row reads as DefaultSettings.
type Settings struct {
	Email         string    `json:"-" gorm:"primaryKey"`
	PublicProfile bool      `json:"publicProfile"`
	PublicEvents  bool      `json:"publicEvents"`
	NotifPush     bool      `json:"notifPush"`
	NotifEmail    bool      `json:"notifEmail"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// DefaultSettings returns the defaults applied to accounts that never saved
// settings: everything on except email notifications.
func DefaultSettings(email string) Settings {
	return Settings{
		Email:         email,
		PublicProfile: true,
		PublicEvents:  true,
		NotifPush:     true,
		NotifEmail:    false,
	}
}
