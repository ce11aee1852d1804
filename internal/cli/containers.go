package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadPack/internal/model"
	"github.com/piwi3910/LoadPack/internal/project"
)

func newContainersCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "containers",
		Short: "List or edit the container presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := root.loadInventory()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printTitle(out, "Containers")
			for _, c := range inv.Containers {
				fmt.Fprintf(out, "  %-10s %-26s %s\n", c.ID, c.Name, styleDim.Render(fmt.Sprintf("%gx%g", c.Width, c.Height)))
			}
			return nil
		},
	}

	cmd.AddCommand(newContainersAddCmd(root))
	cmd.AddCommand(newContainersImportCmd(root))
	return cmd
}

func newContainersAddCmd(root *rootOpts) *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a container preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := model.NewContainer(width, height)
			if err := c.Validate(); err != nil {
				return err
			}
			inv, err := root.loadInventory()
			if err != nil {
				return err
			}
			if inv.FindContainerByName(args[0]) != nil {
				return fmt.Errorf("%w: container %q already exists", model.ErrInvalidInput, args[0])
			}
			p := model.NewContainerPreset(args[0], width, height)
			inv.Containers = append(inv.Containers, p)
			if err := project.SaveInventory(root.inventoryPath(), inv); err != nil {
				return fmt.Errorf("failed to save inventory: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Added %s (%gx%g) as %s", p.Name, p.Width, p.Height, p.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "container width")
	cmd.Flags().Float64Var(&height, "height", 0, "container height")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func newContainersImportCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Merge container presets from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := root.loadInventory()
			if err != nil {
				return err
			}
			before := len(inv.Containers)
			merged, err := project.ImportInventory(args[0], inv)
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", args[0], err)
			}
			if err := project.SaveInventory(root.inventoryPath(), merged); err != nil {
				return fmt.Errorf("failed to save inventory: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Imported %d container presets", len(merged.Containers)-before)
			return nil
		},
	}
}
