package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadPack/internal/model"
	"github.com/piwi3910/LoadPack/internal/project"
)

func newConfigCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage the application config",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective config as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if exists(root.configPath) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", root.configPath)
			}
			if err := project.SaveAppConfig(root.configPath, model.DefaultAppConfig()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Wrote default config")
			printFile(cmd.OutOrStdout(), root.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "export FILE",
		Short: "Back up the config and container presets to one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			inv, err := root.loadInventory()
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], cfg, inv); err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Exported config and %d container presets", len(inv.Containers))
			printFile(cmd.OutOrStdout(), args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Restore the config and container presets from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := project.ImportAllData(args[0])
			if err != nil {
				return fmt.Errorf("failed to import: %w", err)
			}
			if err := project.SaveAppConfig(root.configPath, data.Config); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			if err := project.SaveInventory(root.inventoryPath(), data.Inventory); err != nil {
				return fmt.Errorf("failed to write inventory: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Restored backup from %s", data.CreatedAt)
			return nil
		},
	})

	return cmd
}
