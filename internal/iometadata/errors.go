package iometadata

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

// SpreadsheetError is returned when the workbook cannot be read.
func SpreadsheetError(err error) error {
	msg := "Cannot read <em>README_WCVP.xlsx</em> workbook"

	return &gn.Error{
		Code: errcode.SpreadsheetError,
		Msg:  msg,
		Err:  fmt.Errorf("read workbook: %w", err),
	}
}

// MissingSheetError is returned when the workbook has no metadata
// worksheet.
func MissingSheetError(sheet string) error {
	msg := "Workbook has no <em>%s</em> worksheet"
	vars := []any{sheet}

	return &gn.Error{
		Code: errcode.SpreadsheetError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("worksheet %s not found", sheet),
	}
}
