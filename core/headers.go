package core

import "strings"

// resultColumnTarget is the normalized header text of the result column. Some
// workbooks carry a separate "overrides" column whose header shares most of
// these words, hence the exclusion in the fallback match.
const resultColumnTarget = "overall test result (after considering any applicable test result overrides)"

// leaderHeaderFallback catches the "Audit Lead" header variant.
const leaderHeaderFallback = "Audit Lead"

// ColumnMap maps header text to 1-based column index within a table region,
// with the two semantically special columns resolved up front.
type ColumnMap struct {
	Columns   map[string]int
	LeaderCol int // 0 when absent; leader operations are impossible without it
	ResultCol int // 0 when absent; non-conformance detection is skipped
}

// BuildColumnMap reads the header row of a region into a ColumnMap.
// Duplicate header text resolves to the rightmost column (last wins).
// leaderHeader is the text identifying the audit leader column, matched as a
// substring of the raw header.
func BuildColumnMap(g Grid, region TableRegion, leaderHeader string) ColumnMap {
	cm := ColumnMap{Columns: make(map[string]int)}
	for col := 1; col <= region.MaxCol; col++ {
		header := strings.TrimSpace(g.Cell(region.HeaderRow, col))
		if header == "" {
			continue
		}
		cm.Columns[header] = col
	}
	cm.LeaderCol = resolveLeaderColumn(g, region, leaderHeader)
	cm.ResultCol = resolveResultColumn(g, region)
	return cm
}

func resolveLeaderColumn(g Grid, region TableRegion, leaderHeader string) int {
	for col := 1; col <= region.MaxCol; col++ {
		if strings.Contains(g.Cell(region.HeaderRow, col), leaderHeader) {
			return col
		}
	}
	for col := 1; col <= region.MaxCol; col++ {
		if strings.Contains(g.Cell(region.HeaderRow, col), leaderHeaderFallback) {
			return col
		}
	}
	return 0
}

func resolveResultColumn(g Grid, region TableRegion) int {
	for col := 1; col <= region.MaxCol; col++ {
		if normalizeHeader(g.Cell(region.HeaderRow, col)) == resultColumnTarget {
			return col
		}
	}
	// Fallback: the header wraps or was reworded, but still carries the key
	// phrases and is not the separate overrides column.
	for col := 1; col <= region.MaxCol; col++ {
		normalized := normalizeHeader(g.Cell(region.HeaderRow, col))
		if strings.Contains(normalized, "overall test result") &&
			strings.Contains(normalized, "considering") &&
			strings.Contains(normalized, "applicable") &&
			!strings.Contains(normalized, "override") {
			return col
		}
	}
	return 0
}

// normalizeHeader collapses all whitespace (including newlines from wrapped
// header cells) to single spaces and lower-cases the text.
func normalizeHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
