// File: internal/session/settings.go
// Description: The CLI analogue of the dashboard's browser local storage:
// two team identifiers and an optional backend URL override persisted under
// fixed keys in the user's home directory.

package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/json-iterator/go"
	homedir "github.com/mitchellh/go-homedir"
)

const (
	settingsDir  = ".aegis"
	settingsFile = "settings.json"
)

// Settings holds the values that survive across sessions. Everything else is
// discarded on teardown.
type Settings struct {
	Team       string `json:"team,omitempty"`
	Opponent   string `json:"opponent,omitempty"`
	BackendURL string `json:"backend_url,omitempty"`
}

// SettingsPath resolves the persisted settings file location.
func SettingsPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, settingsDir, settingsFile), nil
}

// LoadSettings reads persisted settings. A missing file yields zero-value
// settings, not an error.
func LoadSettings() (Settings, error) {
	var s Settings
	path, err := SettingsPath()
	if err != nil {
		return s, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, err
	}
	return s, nil
}

// SaveSettings writes settings, creating the directory on first use.
func SaveSettings(s Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ResolveBaseURL applies the precedence order: a persisted user override
// beats the configured default.
func ResolveBaseURL(configured string, s Settings) string {
	if s.BackendURL != "" {
		return s.BackendURL
	}
	return configured
}
