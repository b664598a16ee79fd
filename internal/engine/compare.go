package engine

import (
	"context"

	"github.com/piwi3910/BlockFit/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.SolveSettings
}

// ComparisonResult holds the solver outcome for a single scenario.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Solution model.Solution
	Err      error
}

// CompareScenarios solves the puzzle once per scenario, in scenario order.
// This shows how the block ordering heuristic changes the work done for the
// same puzzle. A precondition failure is reported on every result; a
// canceled context stops the remaining scenarios.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario, p model.Puzzle) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		if ctx.Err() != nil {
			break
		}
		sol, err := New(scenario.Settings).Solve(ctx, p)
		results = append(results, ComparisonResult{
			Scenario: scenario,
			Solution: sol,
			Err:      err,
		})
	}

	return results
}

// BuildDefaultScenarios generates comparison scenarios based on the current
// settings, varying the block ordering.
func BuildDefaultScenarios(base model.SolveSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	if !base.DisableOrdering {
		inputOrder := base
		inputOrder.DisableOrdering = true
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Input Order",
			Settings: inputOrder,
		})
	}

	if base.DisableOrdering || base.EffectiveSortThreshold() >= 0 {
		always := base
		always.DisableOrdering = false
		always.SortThreshold = -1
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Always Sort By Area",
			Settings: always,
		})
	}

	return scenarios
}
