package core

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cell is one materialized cell of a data row. Value is the cached computed
// result for formula cells and the literal content otherwise; Formula is
// non-empty iff the source cell holds a formula. Both are projections of the
// same underlying cell, captured together so they cannot diverge.
type Cell struct {
	Value   string
	Formula string
	Style   int
}

// Row is one data row of a detail table, classified by the leader it belongs
// to and whether its result is non-conforming.
type Row struct {
	Cells  []Cell
	Leader string
	DNC    bool
}

// ExtractRows materializes the data region of a sheet into Rows of exactly
// region.MaxCol cells. Missing or blank cells yield empty values.
func ExtractRows(f ExcelFile, sheet string, region TableRegion, cm ColumnMap, dncToken string) ([]Row, error) {
	token := strings.ToUpper(dncToken)
	rows := make([]Row, 0, region.RowCount())

	for r := region.DataStart; r <= region.DataEnd; r++ {
		row := Row{Cells: make([]Cell, region.MaxCol)}
		for c := 1; c <= region.MaxCol; c++ {
			cellName, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, fmt.Errorf("cell name for (%d,%d): %w", r, c, err)
			}
			value, err := f.GetCellValue(sheet, cellName)
			if err != nil {
				return nil, fmt.Errorf("read cell %s: %w", cellName, err)
			}
			formula, err := f.GetCellFormula(sheet, cellName)
			if err != nil {
				return nil, fmt.Errorf("read formula %s: %w", cellName, err)
			}
			style, _ := f.GetCellStyle(sheet, cellName)
			row.Cells[c-1] = Cell{Value: value, Formula: formula, Style: style}
		}

		if cm.LeaderCol >= 1 && cm.LeaderCol <= region.MaxCol {
			row.Leader = strings.TrimSpace(row.Cells[cm.LeaderCol-1].Value)
		}
		if cm.ResultCol >= 1 && cm.ResultCol <= region.MaxCol {
			result := row.Cells[cm.ResultCol-1].Value
			row.DNC = strings.Contains(strings.ToUpper(result), token)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
