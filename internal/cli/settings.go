package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BlockFit/internal/model"
)

// settingsFlags holds the search flags shared by solve, compare and profile save.
// Only flags the user actually set override the configured values.
type settingsFlags struct {
	noSort        bool
	sortThreshold int
	maxCalls      int
	timeout       time.Duration
	profile       string
}

func (f *settingsFlags) register(cmd *cobra.Command, withProfile bool) {
	cmd.Flags().BoolVar(&f.noSort, "no-sort", false, "keep the input block order regardless of count")
	cmd.Flags().IntVar(&f.sortThreshold, "sort-threshold", model.DefaultSortThreshold, "sort blocks by descending area above this count (negative: always)")
	cmd.Flags().IntVar(&f.maxCalls, "max-calls", 0, "stop after this many search calls (0: unlimited)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "stop the search after this long (0: no deadline)")
	if withProfile {
		cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "start from a saved settings profile")
	}
}

// apply overrides s with the flags that were set on cmd.
func (f *settingsFlags) apply(cmd *cobra.Command, s *model.SolveSettings) {
	flags := cmd.Flags()
	if flags.Changed("no-sort") {
		s.DisableOrdering = f.noSort
	}
	if flags.Changed("sort-threshold") {
		s.SortThreshold = f.sortThreshold
	}
	if flags.Changed("max-calls") {
		s.MaxCalls = f.maxCalls
	}
	if flags.Changed("timeout") {
		s.Timeout = f.timeout
	}
}

// resolveSettings merges the config defaults, the selected profile and the
// command-line flags, in that order.
func (c *CLI) resolveSettings(cmd *cobra.Command, cfg model.AppConfig, f *settingsFlags) (model.SolveSettings, error) {
	settings := model.DefaultSettings()
	cfg.ApplyToSettings(&settings)

	if f.profile != "" {
		profiles, err := c.loadProfiles()
		if err != nil {
			return model.SolveSettings{}, err
		}
		p, ok := model.FindProfile(profiles, f.profile)
		if !ok {
			return model.SolveSettings{}, fmt.Errorf("profile %q not found", f.profile)
		}
		settings = p.Settings
	}

	f.apply(cmd, &settings)
	if settings.MaxCalls < 0 {
		return model.SolveSettings{}, fmt.Errorf("--max-calls must not be negative, got %d", settings.MaxCalls)
	}
	if settings.Timeout < 0 {
		return model.SolveSettings{}, fmt.Errorf("--timeout must not be negative, got %s", settings.Timeout)
	}
	return settings, nil
}

// describeSettings renders settings as a short human-readable summary.
func describeSettings(s model.SolveSettings) string {
	order := fmt.Sprintf("sort above %d blocks", s.EffectiveSortThreshold())
	switch {
	case s.DisableOrdering:
		order = "input order"
	case s.EffectiveSortThreshold() < 0:
		order = "always sort"
	}

	calls := "unlimited calls"
	if s.MaxCalls > 0 {
		calls = fmt.Sprintf("max %d calls", s.MaxCalls)
	}

	if s.Timeout > 0 {
		return fmt.Sprintf("%s, %s, timeout %s", order, calls, s.Timeout)
	}
	return fmt.Sprintf("%s, %s", order, calls)
}
