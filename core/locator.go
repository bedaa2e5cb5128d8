package core

import (
	"strings"

	"github.com/lblanes25/datasplitter/config"
)

// TableRegion describes where the detail table lives within a sheet, below
// any leading summary blocks. Rows and columns are 1-based. An empty region
// (DataEnd < DataStart) is legal.
type TableRegion struct {
	HeaderRow int
	DataStart int
	DataEnd   int
	MaxCol    int
}

// RowCount returns the number of data rows in the region.
func (r TableRegion) RowCount() int {
	if r.DataEnd < r.DataStart {
		return 0
	}
	return r.DataEnd - r.DataStart + 1
}

// FindTableRegion locates the detail table in a sheet by scanning the marker
// column for the section anchor ("Detailed Results") and then, below it, the
// header anchor ("Audit Leader"). The header anchor row is the header row;
// data ends at the row before the first fully empty row, or at the last used
// row. Anchors are matched as case-insensitive substrings; the source
// workbooks are not consistent about casing.
func FindTableRegion(g Grid, loc config.LocatorSettings) (TableRegion, error) {
	sectionRow := scanColumn(g, loc.MarkerColumn, 1, loc.SectionAnchor)
	if sectionRow == 0 {
		return TableRegion{}, ErrTableNotFound
	}

	headerRow := scanColumn(g, loc.MarkerColumn, sectionRow+1, loc.HeaderAnchor)
	if headerRow == 0 {
		return TableRegion{}, ErrTableNotFound
	}

	dataStart := headerRow + 1
	dataEnd := g.MaxRow()
	for row := dataStart; row <= g.MaxRow(); row++ {
		if rowIsEmpty(g, row) {
			dataEnd = row - 1
			break
		}
	}
	if dataStart > g.MaxRow() {
		dataEnd = dataStart - 1
	}

	maxCol := 0
	for col := 1; col <= g.MaxCol(); col++ {
		if strings.TrimSpace(g.Cell(headerRow, col)) != "" {
			maxCol = col
		}
	}
	if maxCol == 0 {
		return TableRegion{}, ErrTableNotFound
	}

	return TableRegion{
		HeaderRow: headerRow,
		DataStart: dataStart,
		DataEnd:   dataEnd,
		MaxCol:    maxCol,
	}, nil
}

// scanColumn returns the first row at or after fromRow whose cell in col
// contains the anchor text, ignoring case. Returns 0 when not found.
func scanColumn(g Grid, col, fromRow int, anchor string) int {
	needle := strings.ToLower(anchor)
	for row := fromRow; row <= g.MaxRow(); row++ {
		if strings.Contains(strings.ToLower(g.Cell(row, col)), needle) {
			return row
		}
	}
	return 0
}

func rowIsEmpty(g Grid, row int) bool {
	for col := 1; col <= g.MaxCol(); col++ {
		if g.Cell(row, col) != "" {
			return false
		}
	}
	return true
}
