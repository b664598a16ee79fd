package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BlockFit/internal/engine"
	"github.com/piwi3910/BlockFit/internal/model"
)

type compareOpts struct {
	settings     settingsFlags
	withProfiles bool
}

func (c *CLI) compareCommand() *cobra.Command {
	var opts compareOpts

	cmd := &cobra.Command{
		Use:   "compare [file]",
		Short: "Compare the search work done under different settings",
		Long: `Compare solves the same puzzle once per scenario: the current settings,
input block order and always sorting by area. Saved profiles are added as
further scenarios unless --profiles=false is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(cmd, args[0], &opts)
		},
	}

	opts.settings.register(cmd, true)
	cmd.Flags().BoolVar(&opts.withProfiles, "profiles", true, "include saved settings profiles as scenarios")

	return cmd
}

func (c *CLI) runCompare(cmd *cobra.Command, path string, opts *compareOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	out := c.printer(cfg)

	puzzle, err := loadPuzzle(logger, path)
	if err != nil {
		return err
	}
	settings, err := c.resolveSettings(cmd, cfg, &opts.settings)
	if err != nil {
		return err
	}

	scenarios := engine.BuildDefaultScenarios(settings)
	if opts.withProfiles {
		profiles, err := c.loadProfiles()
		if err != nil {
			return err
		}
		for _, p := range profiles {
			scenarios = append(scenarios, engine.ComparisonScenario{
				Name:     "Profile: " + p.Name,
				Settings: p.Settings,
			})
		}
	}

	prog := newProgress(logger)
	results := engine.CompareScenarios(ctx, scenarios, puzzle)
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compared %d scenarios", len(results)))

	// Every scenario sees the same structural check, so one failure fails them all
	if len(results) > 0 && engine.IsPrecondition(results[0].Err) {
		return fmt.Errorf("%s: %w", path, results[0].Err)
	}

	out.title(fmt.Sprintf("%-24s %-10s %10s %8s  %s", "Scenario", "Outcome", "Calls", "Sorted", "Settings"))
	for _, r := range results {
		out.line(formatResult(r))
	}
	return nil
}

func formatResult(r engine.ComparisonResult) string {
	sorted := "no"
	if r.Solution.Ordered {
		sorted = "yes"
	}
	return fmt.Sprintf("%-24s %-10s %10d %8s  %s",
		r.Scenario.Name, outcomeLabel(r), r.Solution.Calls, sorted, describeSettings(r.Scenario.Settings))
}

func outcomeLabel(r engine.ComparisonResult) string {
	if r.Solution.Outcome == model.OutcomeAborted && engine.IsCode(r.Err, engine.ErrCodeBudgetExceeded) {
		return "Budget"
	}
	return r.Solution.Outcome.String()
}
