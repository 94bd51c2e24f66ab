// Package settings persists the user-facing application settings: the Steam
// Web API key, the link-opening policy and the market currency.
package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Link-opening policy values.
const (
	// OpenLinksPlain always opens the plain https URL in the browser.
	OpenLinksPlain = 0
	// OpenLinksSteam always opens through the steam:// protocol handler.
	OpenLinksSteam = 1
	// OpenLinksHybrid uses the protocol handler when the Steam client is
	// running and falls back to the plain URL otherwise.
	OpenLinksHybrid = 2
)

// appDirName is the per-user config subdirectory.
const appDirName = "steamlens"

// fileName is the settings file name inside the config directory.
const fileName = "settings.json"

// Settings holds the persisted user settings.
type Settings struct {
	APIKey           string `json:"api_key"`
	OpenLinksInSteam int    `json:"open_links_in_steam"`
	SteamCurrency    int    `json:"steam_currency"`
}

// Default returns the settings used before the user has saved anything.
func Default() Settings {
	return Settings{
		APIKey:           "",
		OpenLinksInSteam: OpenLinksHybrid,
		SteamCurrency:    1,
	}
}

// Store loads and saves settings from a directory on disk.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the user config directory.
func NewStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("get user config directory: %w", err)
	}
	return &Store{dir: filepath.Join(configDir, appDirName)}, nil
}

// NewStoreAt creates a store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the full path of the settings file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load reads settings from disk. A missing file is not an error: the
// defaults are returned so a fresh install works without setup.
func (s *Store) Load() (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no settings file, using defaults", "path", s.Path())
			return settings, nil
		}
		return settings, fmt.Errorf("read settings: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("decode settings: %w", err)
	}

	return settings, nil
}

// Save writes settings to disk atomically.
func (s *Store) Save(settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := atomicWrite(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	slog.Debug("settings saved", "path", s.Path())
	return nil
}
