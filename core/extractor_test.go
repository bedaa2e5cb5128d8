package core

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractRows(t *testing.T) {
	f := excelize.NewFile()
	adapter := &ExcelizeFile{file: f}
	defer adapter.Close()

	sheet := "Sheet1"
	cells := map[string]string{
		"A1": "QA ID", "B1": "Audit Leader", "C1": "Result",
		"A2": "1", "B2": " Alice ", "C2": "Pass",
		"A3": "2", "B3": "Bob", "C3": "dnc - see notes",
		"A4": "3", "B4": "Alice", // C4 left blank
	}
	for cell, val := range cells {
		if err := adapter.SetCellValue(sheet, cell, val); err != nil {
			t.Fatalf("SetCellValue(%s) failed: %v", cell, err)
		}
	}

	region := TableRegion{HeaderRow: 1, DataStart: 2, DataEnd: 4, MaxCol: 3}
	cm := ColumnMap{LeaderCol: 2, ResultCol: 3}

	rows, err := ExtractRows(adapter, sheet, region, cm, "DNC")
	if err != nil {
		t.Fatalf("ExtractRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	// Leader values are trimmed.
	if rows[0].Leader != "Alice" {
		t.Errorf("rows[0].Leader = %q, want Alice", rows[0].Leader)
	}
	// Result matching ignores case and surrounding text.
	if rows[0].DNC {
		t.Errorf("rows[0].DNC = true, want false")
	}
	if !rows[1].DNC {
		t.Errorf("rows[1].DNC = false, want true")
	}
	// Blank cells yield empty values, not errors.
	if got := rows[2].Cells[2].Value; got != "" {
		t.Errorf("rows[2] result cell = %q, want empty", got)
	}
	if rows[2].DNC {
		t.Errorf("rows[2].DNC = true, want false for blank result")
	}
	// Every row spans exactly MaxCol cells.
	for i, row := range rows {
		if len(row.Cells) != 3 {
			t.Errorf("rows[%d] has %d cells, want 3", i, len(row.Cells))
		}
	}
}

func TestExtractRows_CapturesFormulas(t *testing.T) {
	f := excelize.NewFile()
	adapter := &ExcelizeFile{file: f}
	defer adapter.Close()

	sheet := "Sheet1"
	if err := adapter.SetCellValue(sheet, "A2", "literal"); err != nil {
		t.Fatalf("SetCellValue failed: %v", err)
	}
	if err := adapter.SetCellFormula(sheet, "B2", "CONCATENATE(A2,\"!\")"); err != nil {
		t.Fatalf("SetCellFormula failed: %v", err)
	}

	region := TableRegion{HeaderRow: 1, DataStart: 2, DataEnd: 2, MaxCol: 2}
	rows, err := ExtractRows(adapter, sheet, region, ColumnMap{}, "DNC")
	if err != nil {
		t.Fatalf("ExtractRows() error = %v", err)
	}

	if rows[0].Cells[0].Formula != "" {
		t.Errorf("literal cell captured formula %q", rows[0].Cells[0].Formula)
	}
	if rows[0].Cells[0].Value != "literal" {
		t.Errorf("literal cell value = %q, want literal", rows[0].Cells[0].Value)
	}
	if rows[0].Cells[1].Formula == "" {
		t.Errorf("formula cell captured no formula")
	}
}

func TestExtractRows_EmptyRegion(t *testing.T) {
	f := excelize.NewFile()
	adapter := &ExcelizeFile{file: f}
	defer adapter.Close()

	region := TableRegion{HeaderRow: 1, DataStart: 2, DataEnd: 1, MaxCol: 3}
	rows, err := ExtractRows(adapter, "Sheet1", region, ColumnMap{}, "DNC")
	if err != nil {
		t.Fatalf("ExtractRows() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0 for empty region", len(rows))
	}
}
