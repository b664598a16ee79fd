package model

import "time"

// maxRecentPuzzles bounds the RecentPuzzles list.
const maxRecentPuzzles = 10

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default search settings applied to every solve
	DefaultSortThreshold   int  `json:"default_sort_threshold"`
	DefaultDisableOrdering bool `json:"default_disable_ordering"`
	DefaultMaxCalls        int  `json:"default_max_calls"`       // 0 = unlimited
	DefaultTimeoutSeconds  int  `json:"default_timeout_seconds"` // 0 = no deadline

	// Application preferences
	PlainOutput   bool     `json:"plain_output"` // disable terminal colors
	RecentPuzzles []string `json:"recent_puzzles"`
}

// DefaultAppConfig returns an AppConfig populated with the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultSortThreshold:   defaults.SortThreshold,
		DefaultDisableOrdering: defaults.DisableOrdering,
		DefaultMaxCalls:        defaults.MaxCalls,
		DefaultTimeoutSeconds:  int(defaults.Timeout / time.Second),
		RecentPuzzles:          []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a SolveSettings struct.
func (c AppConfig) ApplyToSettings(s *SolveSettings) {
	s.SortThreshold = c.DefaultSortThreshold
	s.DisableOrdering = c.DefaultDisableOrdering
	s.MaxCalls = c.DefaultMaxCalls
	s.Timeout = time.Duration(c.DefaultTimeoutSeconds) * time.Second
}

// AddRecentPuzzle moves path to the front of RecentPuzzles, dropping
// duplicates and trimming the list to its maximum length.
func (c *AppConfig) AddRecentPuzzle(path string) {
	recent := []string{path}
	for _, p := range c.RecentPuzzles {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentPuzzles {
		recent = recent[:maxRecentPuzzles]
	}
	c.RecentPuzzles = recent
}
