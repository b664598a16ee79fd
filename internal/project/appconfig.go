// Package project persists application state under the user's home
// directory: preferences, saved settings profiles and backups.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/BlockFit/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.blockfit/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".blockfit")
}

// ConfigPath returns the application config file inside dir. An empty dir
// means DefaultConfigDir.
func ConfigPath(dir string) string {
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return filepath.Join(dir, "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentPuzzles == nil {
		config.RecentPuzzles = []string{}
	}
	return config, nil
}
