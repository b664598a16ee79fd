package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/BlockFit/internal/importer"
	"github.com/piwi3910/BlockFit/internal/model"
	"github.com/piwi3910/BlockFit/internal/project"
)

// Version is reported by --version. It is set at build time via ldflags.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives command output. Logs go to the writer passed to New.
	Out io.Writer
	// ConfigDir overrides the config directory; empty means project.DefaultConfigDir.
	ConfigDir string

	plain bool
}

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "blockfit",
		Short:        "BlockFit tiles a rectangle with a set of smaller blocks",
		Long:         `BlockFit searches for an exact, non-overlapping tiling of a target board that uses every given block once, rotating blocks where needed.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.ConfigDir, "config-dir", c.ConfigDir, "configuration directory (default ~/.blockfit)")
	root.PersistentFlags().BoolVar(&c.plain, "plain", false, "disable colored output")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.profileCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.gcodeCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

func (c *CLI) configPath() string {
	return project.ConfigPath(c.ConfigDir)
}

func (c *CLI) profilesPath() string {
	return project.ProfilesPath(c.ConfigDir)
}

// =============================================================================
// Shared Loading
// =============================================================================

func (c *CLI) loadConfig() (model.AppConfig, error) {
	cfg, err := project.LoadAppConfig(c.configPath())
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("load config %s: %w", c.configPath(), err)
	}
	return cfg, nil
}

func (c *CLI) loadProfiles() ([]model.SettingsProfile, error) {
	profiles, err := project.LoadProfiles(c.profilesPath())
	if err != nil {
		return nil, fmt.Errorf("load profiles %s: %w", c.profilesPath(), err)
	}
	return profiles, nil
}

// printer returns the output helper, honoring --plain and the config preference.
func (c *CLI) printer(cfg model.AppConfig) printer {
	return printer{w: c.Out, plain: c.plain || cfg.PlainOutput}
}

// loadPuzzle imports a puzzle file, logging any warnings.
func loadPuzzle(logger *log.Logger, path string) (model.Puzzle, error) {
	res := importer.Load(path)
	for _, w := range res.Warnings {
		logger.Warn(w, "file", path)
	}
	if err := res.Err(); err != nil {
		return model.Puzzle{}, fmt.Errorf("import %s: %w", path, err)
	}
	logger.Debug("Loaded puzzle", "name", res.Puzzle.Name, "board", fmt.Sprintf("%dx%d", res.Puzzle.Width, res.Puzzle.Height), "blocks", len(res.Puzzle.Blocks))
	return res.Puzzle, nil
}
