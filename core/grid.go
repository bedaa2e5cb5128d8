package core

// Grid is a read-only view of a sheet's cell values, 1-indexed. Out-of-range
// cells read as empty. The table locator and header mapper work purely
// against this interface so they can be tested without any file format.
type Grid interface {
	Cell(row, col int) string
	MaxRow() int
	MaxCol() int
}

// sheetGrid adapts one sheet of a workbook to Grid using a full row snapshot,
// so the repeated anchor scans do not hit the file for every cell.
type sheetGrid struct {
	rows   [][]string
	maxCol int
}

func newSheetGrid(f ExcelFile, sheet string) (*sheetGrid, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return &sheetGrid{rows: rows, maxCol: maxCol}, nil
}

func (g *sheetGrid) Cell(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

func (g *sheetGrid) MaxRow() int {
	return len(g.rows)
}

func (g *sheetGrid) MaxCol() int {
	return g.maxCol
}
