package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BlockFit/internal/gcode"
)

// gcodeCommand summarizes an existing G-code program.
func (c *CLI) gcodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gcode [file]",
		Short: "Summarize the toolpath of a G-code program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			summary := gcode.Summarize(gcode.Parse(string(data)))
			out := c.printer(cfg)
			out.keyValue("File", args[0])
			out.keyValue("Moves", strconv.Itoa(summary.Moves))
			out.keyValue("Rapids", strconv.Itoa(summary.Rapids))
			out.keyValue("Plunges", strconv.Itoa(summary.Plunges))
			out.keyValue("Retracts", strconv.Itoa(summary.Retracts))
			out.keyValue("Cut length", formatLength(summary.CutLength))
			return nil
		},
	}
}

func formatLength(mm float64) string {
	return strconv.FormatFloat(mm, 'f', 1, 64) + " mm"
}
