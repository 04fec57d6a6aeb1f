package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomobar/internal/sound"
	"pomobar/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Notifications *bool    `yaml:"notifications"`
	Chime         *bool    `yaml:"chime"`
	ChimeVolume   *float64 `yaml:"chime_volume"`
	LaunchAtLogin bool     `yaml:"launch_at_login"`
}

// Store reads and writes the settings file under a config directory.
type Store struct {
	path string
}

// NewStore returns a store for <configDir>/<appName>/settings.yaml.
func NewStore(configDir, appName string) *Store {
	return &Store{path: filepath.Join(configDir, appName, settingsFileName)}
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func (store *Store) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *Store) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	volume := sound.ClampVolume(settings.ChimeVolume)
	fileData := yamlSettings{
		Notifications: &settings.NotificationsEnabled,
		Chime:         &settings.ChimeEnabled,
		ChimeVolume:   &volume,
		LaunchAtLogin: settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Notifications != nil {
		settings.NotificationsEnabled = *fileData.Notifications
	}
	if fileData.Chime != nil {
		settings.ChimeEnabled = *fileData.Chime
	}
	if fileData.ChimeVolume != nil {
		settings.ChimeVolume = sound.ClampVolume(*fileData.ChimeVolume)
	}
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
