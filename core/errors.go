package core

import (
	"errors"
	"fmt"
)

// ErrTableNotFound indicates a detail sheet is missing the section or header
// anchor, so no table region could be located.
var ErrTableNotFound = errors.New("detail table not found")

// ErrLeaderColumnNotFound indicates the header row has no audit leader column.
var ErrLeaderColumnNotFound = errors.New("audit leader column not found")

// ErrNoDetailSheets indicates the workbook has no sheet with a usable detail table.
var ErrNoDetailSheets = errors.New("no usable detail sheets")

// ErrNoLeaders indicates no audit leader values were found in any detail sheet.
var ErrNoLeaders = errors.New("no audit leaders found")

// SheetError wraps an error with the sheet it occurred in.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
