package core

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteRows overwrites the data region of a sheet with the given row sequence
// and removes any leftover original rows below it, bottom-up so row numbers
// stay valid while deleting. Header and pre-data content are untouched.
// Formula cells are re-written with both their cached value and formula so
// the two read projections of the grid stay consistent.
func WriteRows(f ExcelFile, sheet string, region TableRegion, rows []Row) error {
	for i, row := range rows {
		r := region.DataStart + i
		for c := 1; c <= region.MaxCol && c <= len(row.Cells); c++ {
			cellName, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return fmt.Errorf("cell name for (%d,%d): %w", r, c, err)
			}
			cell := row.Cells[c-1]
			if err := f.SetCellValue(sheet, cellName, cell.Value); err != nil {
				return fmt.Errorf("write cell %s: %w", cellName, err)
			}
			if cell.Formula != "" {
				if err := f.SetCellFormula(sheet, cellName, cell.Formula); err != nil {
					return fmt.Errorf("write formula %s: %w", cellName, err)
				}
			}
			if cell.Style != 0 {
				if err := f.SetCellStyle(sheet, cellName, cellName, cell.Style); err != nil {
					return fmt.Errorf("write style %s: %w", cellName, err)
				}
			}
		}
	}

	for r := region.DataEnd; r >= region.DataStart+len(rows); r-- {
		if err := f.RemoveRow(sheet, r); err != nil {
			return fmt.Errorf("remove row %d: %w", r, err)
		}
	}
	return nil
}

// DeleteRowsOutside removes every data row of the region whose offset is not
// in keep. Deletion runs bottom-up: the tail rows go first, then any interior
// stragglers, then the head, so earlier deletions never renumber the rows
// still pending. keep holds 0-based offsets relative to region.DataStart.
func DeleteRowsOutside(f ExcelFile, sheet string, region TableRegion, keep []int) error {
	keepSet := make(map[int]struct{}, len(keep))
	for _, i := range keep {
		keepSet[i] = struct{}{}
	}
	for r := region.DataEnd; r >= region.DataStart; r-- {
		if _, ok := keepSet[r-region.DataStart]; ok {
			continue
		}
		if err := f.RemoveRow(sheet, r); err != nil {
			return fmt.Errorf("remove row %d: %w", r, err)
		}
	}
	return nil
}

// FinalizePresentation resets a sheet's view for delivery: selection and
// scroll position back to A1, frozen panes cleared, every outline-grouped
// row and column collapsed, and the outline summary toggles disabled so
// collapsed groups stay collapsed. Failures are logged and swallowed; a
// presentation glitch must never block the save.
func FinalizePresentation(f ExcelFile, sheet string, logger *slog.Logger) {
	if err := f.SetSelection(sheet, "A1"); err != nil {
		logger.Warn("could not reset selection", "sheet", sheet, "error", err)
	}
	if err := f.SetTopLeftCell(sheet, "A1"); err != nil {
		logger.Warn("could not reset scroll position", "sheet", sheet, "error", err)
	}

	maxCol, maxRow, err := sheetExtent(f, sheet)
	if err != nil {
		logger.Warn("could not determine sheet extent", "sheet", sheet, "error", err)
		return
	}

	for r := 1; r <= maxRow; r++ {
		level, err := f.GetRowOutlineLevel(sheet, r)
		if err != nil || level == 0 {
			continue
		}
		if err := f.SetRowVisible(sheet, r, false); err != nil {
			logger.Warn("could not collapse row group", "sheet", sheet, "row", r, "error", err)
		}
	}
	for c := 1; c <= maxCol; c++ {
		colName, err := excelize.ColumnNumberToName(c)
		if err != nil {
			continue
		}
		level, err := f.GetColOutlineLevel(sheet, colName)
		if err != nil || level == 0 {
			continue
		}
		if err := f.SetColVisible(sheet, colName, false); err != nil {
			logger.Warn("could not collapse column group", "sheet", sheet, "col", colName, "error", err)
		}
	}

	if err := f.SetOutlineSummary(sheet, false, false); err != nil {
		logger.Warn("could not disable outline summary", "sheet", sheet, "error", err)
	}
}

// sheetExtent returns the used width and height of a sheet from its
// dimension reference.
func sheetExtent(f ExcelFile, sheet string) (maxCol, maxRow int, err error) {
	dim, err := f.GetSheetDimension(sheet)
	if err != nil {
		return 0, 0, err
	}
	ref := dim
	if idx := strings.Index(dim, ":"); idx >= 0 {
		ref = dim[idx+1:]
	}
	maxCol, maxRow, err = excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, fmt.Errorf("parse dimension %q: %w", dim, err)
	}
	return maxCol, maxRow, nil
}
