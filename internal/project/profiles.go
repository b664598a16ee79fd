package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/BlockFit/internal/model"
)

// ProfilesPath returns the saved settings profiles file inside dir. An empty
// dir means DefaultConfigDir.
func ProfilesPath(dir string) string {
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return filepath.Join(dir, "profiles.json")
}

// SaveProfiles saves settings profiles to a JSON file.
func SaveProfiles(path string, profiles []model.SettingsProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProfiles loads settings profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadProfiles(path string) ([]model.SettingsProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.SettingsProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.SettingsProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []model.SettingsProfile{}
	}
	return profiles, nil
}

// ExportProfile exports a single profile to a JSON file (for sharing).
func ExportProfile(path string, profile model.SettingsProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportProfile imports a single profile from a JSON file.
func ImportProfile(path string) (model.SettingsProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SettingsProfile{}, err
	}

	var profile model.SettingsProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.SettingsProfile{}, err
	}

	if profile.Name == "" {
		return model.SettingsProfile{}, errors.New("imported profile has no name")
	}
	return profile, nil
}
