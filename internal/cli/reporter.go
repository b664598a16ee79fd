package cli

import (
	"github.com/charmbracelet/log"

	"github.com/piwi3910/BlockFit/internal/engine"
	"github.com/piwi3910/BlockFit/internal/model"
)

// logReporter logs search events: placements and removals at debug level,
// the outcome at info level.
type logReporter struct {
	logger *log.Logger
}

var _ engine.Reporter = logReporter{}

func newLogReporter(l *log.Logger) logReporter {
	return logReporter{logger: l}
}

func (r logReporter) Placed(p model.Placement) {
	r.logger.Debug("Placed", "rect", p.String(), "block", p.Block, "rotated", p.Rotated)
}

func (r logReporter) Removed(p model.Placement) {
	r.logger.Debug("Removed", "rect", p.String(), "block", p.Block)
}

func (r logReporter) Finished(outcome model.Outcome, calls int) {
	r.logger.Info("Search finished", "outcome", outcome.String(), "calls", calls)
}
