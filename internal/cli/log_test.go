package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/BlockFit/internal/model"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	assert.Same(t, logger, loggerFromContext(withLogger(context.Background(), logger)))
	assert.NotNil(t, loggerFromContext(context.Background()))
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Solved")

	assert.Contains(t, buf.String(), "Solved (")
}

func TestCLISetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	r := newLogReporter(newLogger(&buf, log.DebugLevel))
	p := model.Placement{Block: 1, Width: 4, Height: 2, At: model.Point{Col: 0, Row: 2}}

	r.Placed(p)
	r.Removed(p)
	r.Finished(model.OutcomeExhausted, 3)

	out := buf.String()
	assert.Contains(t, out, "Placed")
	assert.Contains(t, out, "Removed")
	assert.Contains(t, out, "rectangle 4 x 2 at (0, 2)")
	assert.Contains(t, out, "Search finished")
	assert.Contains(t, out, "Exhausted")
}

func TestLogReporter_InfoLevelHidesPlacements(t *testing.T) {
	var buf bytes.Buffer
	r := newLogReporter(newLogger(&buf, log.InfoLevel))

	r.Placed(model.Placement{Width: 1, Height: 1})
	assert.Zero(t, buf.Len())

	r.Finished(model.OutcomeSolved, 1)
	assert.Contains(t, buf.String(), "Solved")
}
