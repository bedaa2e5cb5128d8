package core

import "github.com/xuri/excelize/v2"

// ExcelFile abstracts workbook operations to decouple splitter logic from excelize.
type ExcelFile interface {
	Close() error
	Save() error
	SaveAs(name string) error
	GetSheetList() []string
	GetRows(sheet string) ([][]string, error)
	GetCellValue(sheet, cell string) (string, error)
	GetCellFormula(sheet, cell string) (string, error)
	GetCellStyle(sheet, cell string) (int, error)
	SetCellValue(sheet, cell string, value interface{}) error
	SetCellFormula(sheet, cell, formula string) error
	SetCellStyle(sheet, hcell, vcell string, styleID int) error
	RemoveRow(sheet string, row int) error
	GetSheetDimension(sheet string) (string, error)
	GetRowOutlineLevel(sheet string, row int) (uint8, error)
	SetRowVisible(sheet string, row int, visible bool) error
	GetColOutlineLevel(sheet, col string) (uint8, error)
	SetColVisible(sheet, col string, visible bool) error
	SetTabColor(sheet, rgb string) error
	SetOutlineSummary(sheet string, below, right bool) error
	SetTopLeftCell(sheet, cell string) error
	SetSelection(sheet, cell string) error
}

type ExcelizeFile struct {
	file *excelize.File
}

func openExcelFile(path string) (ExcelFile, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &ExcelizeFile{file: file}, nil
}

func (e *ExcelizeFile) Close() error {
	return e.file.Close()
}

func (e *ExcelizeFile) Save() error {
	return e.file.Save()
}

func (e *ExcelizeFile) SaveAs(name string) error {
	return e.file.SaveAs(name)
}

func (e *ExcelizeFile) GetSheetList() []string {
	return e.file.GetSheetList()
}

func (e *ExcelizeFile) GetRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

func (e *ExcelizeFile) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

func (e *ExcelizeFile) GetCellFormula(sheet, cell string) (string, error) {
	return e.file.GetCellFormula(sheet, cell)
}

func (e *ExcelizeFile) GetCellStyle(sheet, cell string) (int, error) {
	return e.file.GetCellStyle(sheet, cell)
}

func (e *ExcelizeFile) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

func (e *ExcelizeFile) SetCellFormula(sheet, cell, formula string) error {
	return e.file.SetCellFormula(sheet, cell, formula)
}

func (e *ExcelizeFile) SetCellStyle(sheet, hcell, vcell string, styleID int) error {
	return e.file.SetCellStyle(sheet, hcell, vcell, styleID)
}

func (e *ExcelizeFile) RemoveRow(sheet string, row int) error {
	return e.file.RemoveRow(sheet, row)
}

func (e *ExcelizeFile) GetSheetDimension(sheet string) (string, error) {
	return e.file.GetSheetDimension(sheet)
}

func (e *ExcelizeFile) GetRowOutlineLevel(sheet string, row int) (uint8, error) {
	return e.file.GetRowOutlineLevel(sheet, row)
}

func (e *ExcelizeFile) SetRowVisible(sheet string, row int, visible bool) error {
	return e.file.SetRowVisible(sheet, row, visible)
}

func (e *ExcelizeFile) GetColOutlineLevel(sheet, col string) (uint8, error) {
	return e.file.GetColOutlineLevel(sheet, col)
}

func (e *ExcelizeFile) SetColVisible(sheet, col string, visible bool) error {
	return e.file.SetColVisible(sheet, col, visible)
}

func (e *ExcelizeFile) SetTabColor(sheet, rgb string) error {
	return e.file.SetSheetProps(sheet, &excelize.SheetPropsOptions{
		TabColorRGB: &rgb,
	})
}

func (e *ExcelizeFile) SetOutlineSummary(sheet string, below, right bool) error {
	return e.file.SetSheetProps(sheet, &excelize.SheetPropsOptions{
		OutlineSummaryBelow: &below,
		OutlineSummaryRight: &right,
	})
}

func (e *ExcelizeFile) SetTopLeftCell(sheet, cell string) error {
	return e.file.SetSheetView(sheet, -1, &excelize.ViewOptions{
		TopLeftCell: &cell,
	})
}

func (e *ExcelizeFile) SetSelection(sheet, cell string) error {
	// Replaces any frozen or split pane state with a plain selection on the
	// given cell.
	return e.file.SetPanes(sheet, &excelize.Panes{
		Freeze: false,
		Split:  false,
		Selection: []excelize.Selection{
			{
				ActiveCell: cell,
				SQRef:      cell,
			},
		},
	})
}
