package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BlockFit/internal/model"
	"github.com/piwi3910/BlockFit/internal/project"
)

// configCommand creates the configuration management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and manage the configuration",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configExportCommand())
	cmd.AddCommand(c.configImportCommand())

	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			out := c.printer(cfg)

			out.keyValue("File", c.configPath())
			out.keyValue("Sort above", strconv.Itoa(cfg.DefaultSortThreshold))
			out.keyValue("Input order", strconv.FormatBool(cfg.DefaultDisableOrdering))
			out.keyValue("Max calls", strconv.Itoa(cfg.DefaultMaxCalls))
			out.keyValue("Timeout", (time.Duration(cfg.DefaultTimeoutSeconds) * time.Second).String())
			out.keyValue("Plain output", strconv.FormatBool(cfg.PlainOutput))
			if len(cfg.RecentPuzzles) > 0 {
				out.keyValue("Recent", cfg.RecentPuzzles[0])
				for _, p := range cfg.RecentPuzzles[1:] {
					out.keyValue("", p)
				}
			}
			return nil
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := model.DefaultAppConfig()
			if err := project.SaveAppConfig(path, cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			out := c.printer(cfg)
			out.success("Wrote default configuration")
			out.file(path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration")

	return cmd
}

func (c *CLI) configExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Back up the configuration and profiles to one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			profiles, err := c.loadProfiles()
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], cfg, profiles); err != nil {
				return err
			}

			out := c.printer(cfg)
			out.success("Backed up configuration and %d profiles", len(profiles))
			out.file(args[0])
			return nil
		},
	}
}

func (c *CLI) configImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Restore the configuration and profiles from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(c.configPath(), backup.Config); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			if err := project.SaveProfiles(c.profilesPath(), backup.Profiles); err != nil {
				return fmt.Errorf("save profiles: %w", err)
			}

			out := c.printer(backup.Config)
			out.success("Restored configuration and %d profiles", len(backup.Profiles))
			out.detail("Backup created %s", backup.CreatedAt)
			return nil
		},
	}
}
