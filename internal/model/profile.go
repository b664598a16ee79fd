package model

import "strings"

// SettingsProfile is a named, reusable set of search settings.
type SettingsProfile struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Settings    SolveSettings `json:"settings"`
}

// FindProfile looks a profile up by name, ignoring case.
func FindProfile(profiles []SettingsProfile, name string) (SettingsProfile, bool) {
	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return SettingsProfile{}, false
}

// UpsertProfile replaces the profile with the same name, or appends it.
func UpsertProfile(profiles []SettingsProfile, profile SettingsProfile) []SettingsProfile {
	for i, p := range profiles {
		if strings.EqualFold(p.Name, profile.Name) {
			profiles[i] = profile
			return profiles
		}
	}
	return append(profiles, profile)
}

// RemoveProfile drops the named profile and reports whether it was present.
func RemoveProfile(profiles []SettingsProfile, name string) ([]SettingsProfile, bool) {
	for i, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return append(profiles[:i], profiles[i+1:]...), true
		}
	}
	return profiles, false
}
