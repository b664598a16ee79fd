package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BlockFit/internal/model"
	"github.com/piwi3910/BlockFit/internal/project"
)

// profileCommand creates the settings profile management command.
func (c *CLI) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage named settings profiles",
	}

	cmd.AddCommand(c.profileListCommand())
	cmd.AddCommand(c.profileSaveCommand())
	cmd.AddCommand(c.profileDeleteCommand())
	cmd.AddCommand(c.profileExportCommand())
	cmd.AddCommand(c.profileImportCommand())

	return cmd
}

func (c *CLI) profileListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			out := c.printer(cfg)

			profiles, err := c.loadProfiles()
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				out.info("No saved profiles")
				return nil
			}
			for _, p := range profiles {
				out.keyValue(p.Name, describeSettings(p.Settings))
				if p.Description != "" {
					out.detail("%s", p.Description)
				}
			}
			return nil
		},
	}
}

func (c *CLI) profileSaveCommand() *cobra.Command {
	var (
		flags       settingsFlags
		description string
	)

	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the configured settings, overridden by flags, as a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			out := c.printer(cfg)

			settings, err := c.resolveSettings(cmd, cfg, &flags)
			if err != nil {
				return err
			}
			profiles, err := c.loadProfiles()
			if err != nil {
				return err
			}

			profile := model.SettingsProfile{Name: args[0], Description: description, Settings: settings}
			profiles = model.UpsertProfile(profiles, profile)
			if err := project.SaveProfiles(c.profilesPath(), profiles); err != nil {
				return fmt.Errorf("save profiles: %w", err)
			}

			out.success("Saved profile %q", profile.Name)
			out.detail("%s", describeSettings(settings))
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&description, "description", "d", "", "profile description")

	return cmd
}

func (c *CLI) profileDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved profile",
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

			profiles, ok := model.RemoveProfile(profiles, args[0])
			if !ok {
				return fmt.Errorf("profile %q not found", args[0])
			}
			if err := project.SaveProfiles(c.profilesPath(), profiles); err != nil {
				return fmt.Errorf("save profiles: %w", err)
			}

			c.printer(cfg).success("Deleted profile %q", args[0])
			return nil
		},
	}
}

func (c *CLI) profileExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [name] [file]",
		Short: "Write a profile to a file for sharing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			profiles, err := c.loadProfiles()
			if err != nil {
				return err
			}

			profile, ok := model.FindProfile(profiles, args[0])
			if !ok {
				return fmt.Errorf("profile %q not found", args[0])
			}
			if err := project.ExportProfile(args[1], profile); err != nil {
				return fmt.Errorf("export profile: %w", err)
			}

			out := c.printer(cfg)
			out.success("Exported profile %q", profile.Name)
			out.file(args[1])
			return nil
		},
	}
}

func (c *CLI) profileImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Add a shared profile, replacing one with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			profile, err := project.ImportProfile(args[0])
			if err != nil {
				return fmt.Errorf("import profile %s: %w", args[0], err)
			}
			profiles, err := c.loadProfiles()
			if err != nil {
				return err
			}

			profiles = model.UpsertProfile(profiles, profile)
			if err := project.SaveProfiles(c.profilesPath(), profiles); err != nil {
				return fmt.Errorf("save profiles: %w", err)
			}

			c.printer(cfg).success("Imported profile %q", profile.Name)
			return nil
		},
	}
}
