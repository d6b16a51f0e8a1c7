package model

// UserSettings are the display preferences kept per user. They live in the
// local settings file and, when the backend supports it, are synced through
// GET/PUT /users/settings.
type UserSettings struct {
	DarkMode           bool   `json:"darkMode"`
	PrimaryColor       string `json:"primaryColor"`
	ItemsPerPage       int    `json:"itemsPerPage"`
	DefaultViewMode    string `json:"defaultViewMode"`
	EmailNotifications bool   `json:"emailNotifications"`
	InAppNotifications bool   `json:"inAppNotifications"`
}

// View modes for the content listing.
const (
	ViewModeGrid = "grid"
	ViewModeList = "list"
)

// DefaultSettings are the hard-coded fallbacks used when no stored or
// remote value exists, and the values a reset restores.
func DefaultSettings() UserSettings {
	return UserSettings{
		DarkMode:           false,
		PrimaryColor:       "#1976d2",
		ItemsPerPage:       10,
		DefaultViewMode:    ViewModeGrid,
		EmailNotifications: true,
		InAppNotifications: true,
	}
}
