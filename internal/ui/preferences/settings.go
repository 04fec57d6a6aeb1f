package preferences

// Settings defines editable user preferences.
type Settings struct {
	NotificationsEnabled bool
	ChimeEnabled         bool
	ChimeVolume          float64
	LaunchAtLogin        bool
}

// DefaultSettings returns default settings for Pomobar.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		ChimeEnabled:         true,
		ChimeVolume:          0.6,
		LaunchAtLogin:        false,
	}
}
