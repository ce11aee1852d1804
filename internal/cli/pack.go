package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadPack/internal/engine"
	"github.com/piwi3910/LoadPack/internal/export"
	"github.com/piwi3910/LoadPack/internal/model"
	"github.com/piwi3910/LoadPack/internal/project"
)

// packOpts holds the output flags of the pack command.
type packOpts struct {
	input inputOpts

	pdf     string  // PDF report path
	png     string  // PNG layout path
	scale   float64 // PNG pixels per unit
	xlsx    string  // workbook path
	labels  string  // label sheet path
	jsonOut string  // result JSON path, "-" for stdout
	save    string  // project file path
	quiet   bool    // summary only, no placement table
}

func newPackCmd(root *rootOpts) *cobra.Command {
	opts := packOpts{scale: export.DefaultPNGScale}

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack items into a container and report the wasted area",
		Example: `  loadpack pack
  loadpack pack --random 20 --seed 7 --png layout.png
  loadpack pack --loads loads.yaml --container "Euro pallet (EUR1)" --pdf plan.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, root, &opts)
		},
	}

	opts.input.addFlags(cmd)
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "write a PDF report")
	cmd.Flags().StringVar(&opts.png, "png", "", "write a PNG layout image")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixels per container unit")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "write an Excel workbook")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "write a PDF label sheet")
	cmd.Flags().StringVar(&opts.jsonOut, "json", "", "write the result as JSON (- for stdout)")
	cmd.Flags().StringVar(&opts.save, "save", "", "save the run as a project file")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print the summary only")

	return cmd
}

func runPack(cmd *cobra.Command, root *rootOpts, opts *packOpts) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	container, err := opts.input.resolveContainer(cfg, root.loadInventory)
	if err != nil {
		return err
	}
	items, err := opts.input.items(cmd, cfg, logger)
	if err != nil {
		return err
	}
	settings := opts.input.settings(cfg)

	prog := newProgress(logger)
	result, err := engine.Run(settings, items, container, engine.WithLogger(logger))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Packed %d items into %s", len(items), container.Label))

	if opts.jsonOut == "-" {
		return writeResultJSON(out, result)
	}

	if !opts.quiet {
		printPlacements(out, result)
		printNewline(out)
	}
	printSummary(out, result, settings)

	if err := writePackOutputs(out, root, opts, settings, result); err != nil {
		return err
	}
	return nil
}

func writePackOutputs(out io.Writer, root *rootOpts, opts *packOpts, settings model.PackSettings, result model.PackResult) error {
	outputs := []struct {
		path  string
		write func(string) error
	}{
		{opts.pdf, func(p string) error { return export.ExportPDF(p, result, settings) }},
		{opts.png, func(p string) error { return export.ExportPNG(p, result, opts.scale) }},
		{opts.xlsx, func(p string) error { return export.ExportXLSX(p, result) }},
		{opts.labels, func(p string) error { return export.ExportLabels(p, result) }},
		{opts.jsonOut, func(p string) error { return writeResultJSONFile(p, result) }},
		{opts.save, func(p string) error { return saveProject(p, root, opts, settings, result) }},
	}

	wrote := false
	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		if err := o.write(o.path); err != nil {
			return fmt.Errorf("failed to write %s: %w", o.path, err)
		}
		if !wrote {
			printNewline(out)
			wrote = true
		}
		printFile(out, o.path)
	}
	return nil
}

func saveProject(path string, root *rootOpts, opts *packOpts, settings model.PackSettings, result model.PackResult) error {
	p := model.NewProject()
	p.Name = strings.TrimSuffix(filepath.Base(path), project.FileExtension)
	p.Container = result.Container
	p.Settings = settings
	p.Result = &result
	if opts.input.loadsPath != "" {
		loads, _, err := project.LoadLoadList(opts.input.loadsPath)
		if err != nil {
			return err
		}
		p.Loads = loads
	}
	if !strings.HasSuffix(path, project.FileExtension) {
		path += project.FileExtension
	}
	return project.Save(path, p)
}

func writeResultJSON(w io.Writer, result model.PackResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeResultJSONFile(path string, result model.PackResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeResultJSON(f, result)
}

// printPlacements prints one line per item in packing order.
func printPlacements(w io.Writer, result model.PackResult) {
	printTitle(w, fmt.Sprintf("Placements in %s", result.Container.Label))
	for _, p := range result.Placements {
		size := fmt.Sprintf("%gx%g", p.Item.Width, p.Item.Height)
		if !p.Placed() {
			fmt.Fprintf(w, "  %-8s %-10s %s\n", p.Item.Label, size, styleMissing.Render("unplaced"))
			continue
		}
		line := fmt.Sprintf("  %-8s %-10s at (%g, %g)", p.Item.Label, size, p.Position.X, p.Position.Y)
		if p.Rotated() {
			line += " " + styleRotated.Render("rotated")
		}
		fmt.Fprintln(w, line)
	}
}

func printSummary(w io.Writer, result model.PackResult, settings model.PackSettings) {
	printTitle(w, "Summary")
	printKeyValue(w, "Container", fmt.Sprintf("%s (%gx%g)", result.Container.Label, result.Container.Width, result.Container.Height))
	printKeyValue(w, "Rotation", map[bool]string{true: "allowed", false: "disabled"}[settings.AllowRotation])
	printKeyValue(w, "Placed", fmt.Sprintf("%d / %d", result.PlacedCount(), len(result.Placements)))
	printKeyValue(w, "Used area", fmt.Sprintf("%g", result.UsedArea()))
	printKeyValue(w, "Efficiency", fmt.Sprintf("%.1f%%", result.Efficiency()))

	if unplaced := result.Unplaced(); len(unplaced) > 0 {
		labels := make([]string, len(unplaced))
		for i, it := range unplaced {
			labels[i] = it.Label
		}
		printWarning(w, "%d items did not fit: %s", len(unplaced), strings.Join(labels, ", "))
	}

	fmt.Fprintf(w, "Total wasted area: %s\n", styleNumber.Render(fmt.Sprintf("%g", result.WastedArea())))
}
