package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/LoadPack/internal/model"
)

const (
	placementsSheet = "Placements"
	summarySheet    = "Summary"
)

// ExportXLSX writes a workbook with one row per item on the Placements
// sheet, in packing order, and the totals on the Summary sheet. Unplaced
// items have empty position cells.
func ExportXLSX(path string, result model.PackResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), placementsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	header := []interface{}{"ID", "Label", "Width", "Height", "Placed", "X", "Y", "Rotated", "Placed Width", "Placed Height"}
	if err := f.SetSheetRow(placementsSheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(placementsSheet, "A1", "J1", bold); err != nil {
		return err
	}

	for i, p := range result.Placements {
		row := []interface{}{p.Item.ID, p.Item.Label, p.Item.Width, p.Item.Height, p.Placed()}
		if p.Placed() {
			row = append(row, p.Position.X, p.Position.Y, p.Rotated(), p.PlacedWidth(), p.PlacedHeight())
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(placementsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", p.Item.Label, err)
		}
	}

	summary := [][]interface{}{
		{"Container", result.Container.Label},
		{"Container Width", result.Container.Width},
		{"Container Height", result.Container.Height},
		{"Items", len(result.Placements)},
		{"Placed", result.PlacedCount()},
		{"Unplaced", len(result.Placements) - result.PlacedCount()},
		{"Used Area", result.UsedArea()},
		{"Total Wasted Area", result.WastedArea()},
		{"Efficiency %", result.Efficiency()},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}
