package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BlockFit/internal/engine"
	"github.com/piwi3910/BlockFit/internal/export"
	"github.com/piwi3910/BlockFit/internal/gcode"
	"github.com/piwi3910/BlockFit/internal/model"
	"github.com/piwi3910/BlockFit/internal/project"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	settings settingsFlags
	pdf      string // layout PDF path
	labels   string // QR label sheet path
	dxf      string // DXF drawing path
	xlsx     string // Excel workbook path
	gcode    string // milling program path
	cut      model.CutSettings
	trace    bool // print every placement and removal after the search
}

// outputWriter is the common signature of the export functions.
type outputWriter func(path string, p model.Puzzle, sol model.Solution) error

func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{cut: model.DefaultCutSettings()}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Tile the target board with every block",
		Long: `Solve reads a puzzle file and searches for a tiling of the target board.

The file format is chosen by extension: .toml puzzle files, .csv and .xlsx
block lists with a "board" row, and anything else as plain text
("width height count" followed by count "w h" pairs).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args[0], &opts)
		},
	}

	opts.settings.register(cmd, true)
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "write the solved layout to a PDF file")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "write QR-coded block labels to a PDF file")
	cmd.Flags().StringVar(&opts.dxf, "dxf", "", "write the solved layout to a DXF drawing")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "write the grid and placements to an Excel workbook")
	cmd.Flags().StringVar(&opts.gcode, "gcode", "", "write a G-code program that cuts the pieces out of a board")
	cmd.Flags().StringVar(&opts.cut.Controller, "controller", opts.cut.Controller, "G-code dialect: "+strings.Join(model.ControllerNames(), ", "))
	cmd.Flags().Float64Var(&opts.cut.CellSize, "cell-size", opts.cut.CellSize, "board cell size in mm for G-code output")
	cmd.Flags().Float64Var(&opts.cut.ToolDiameter, "tool-diameter", opts.cut.ToolDiameter, "end mill diameter in mm")
	cmd.Flags().Float64Var(&opts.cut.CutDepth, "cut-depth", opts.cut.CutDepth, "board thickness in mm")
	cmd.Flags().IntVar(&opts.cut.TabsPerSide, "tabs", opts.cut.TabsPerSide, "holding tabs per side on the board outline")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print every placement and removal made by the search")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, path string, opts *solveOpts) error {
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
	logger.Debug("Search settings", "settings", describeSettings(settings))

	sol, rec, err := solve(ctx, settings, puzzle, newLogReporter(logger), opts.trace)
	if engine.IsPrecondition(err) {
		return fmt.Errorf("%s: %w", path, err)
	}

	c.rememberPuzzle(cfg, path)

	if rec != nil {
		printTrace(out, rec)
	}

	switch sol.Outcome {
	case model.OutcomeSolved:
		out.board(export.RenderText(puzzle, sol))
		out.success("Solved in %d calls", sol.Calls)
	case model.OutcomeExhausted:
		out.error("Can't solve, took %d calls to find that out", sol.Calls)
	default:
		out.error("Search stopped after %d calls", sol.Calls)
		return err
	}

	return c.writeOutputs(out, puzzle, sol, opts)
}

// solve runs the search, recording every event when trace is set.
func solve(ctx context.Context, settings model.SolveSettings, p model.Puzzle, r engine.Reporter, trace bool) (model.Solution, *engine.Recorder, error) {
	var rec *engine.Recorder
	if trace {
		rec = engine.NewRecorder()
		r = engine.Tee(r, rec)
	}

	prog := newProgress(loggerFromContext(ctx))
	sol, err := engine.New(settings).WithReporter(r).Solve(ctx, p)
	if err == nil {
		prog.done(fmt.Sprintf("%s after %d calls", sol.Outcome, sol.Calls))
	}
	return sol, rec, err
}

func printTrace(out printer, rec *engine.Recorder) {
	out.title("Trace")
	for _, e := range rec.Events {
		switch e.Kind {
		case engine.EventFinished:
			out.detail("%s: %s after %d calls", e.Kind, e.Outcome, e.Calls)
		default:
			out.detail("%s %s", e.Kind, e.Placement)
		}
	}
}

// writeOutputs writes every requested output file. Outputs need a solution.
func (c *CLI) writeOutputs(out printer, p model.Puzzle, sol model.Solution, opts *solveOpts) error {
	var toolpath gcode.Summary
	outputs := []struct {
		path  string
		write outputWriter
	}{
		{opts.pdf, export.ExportPDF},
		{opts.labels, export.ExportLabels},
		{opts.dxf, export.ExportDXF},
		{opts.xlsx, export.ExportExcel},
		{opts.gcode, func(path string, p model.Puzzle, sol model.Solution) (err error) {
			toolpath, err = gcode.New(opts.cut).WriteFile(path, p, sol)
			return err
		}},
	}

	requested := false
	for _, o := range outputs {
		requested = requested || o.path != ""
	}
	if !requested {
		return nil
	}
	if !sol.Solved() {
		out.warning("No solution, skipping file outputs")
		return nil
	}

	out.info("Wrote")
	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		if err := o.write(o.path, p, sol); err != nil {
			return fmt.Errorf("write %s: %w", o.path, err)
		}
		out.file(o.path)
	}
	if opts.gcode != "" {
		out.detail("%s cut in %d moves", formatLength(toolpath.CutLength), toolpath.Moves)
	}
	return nil
}

// rememberPuzzle records path in the recent puzzle list. Failures only warn.
func (c *CLI) rememberPuzzle(cfg model.AppConfig, path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	cfg.AddRecentPuzzle(path)
	if err := project.SaveAppConfig(c.configPath(), cfg); err != nil {
		c.Logger.Warn("Could not update recent puzzles", "err", err)
	}
}
