// Package iometadata reads release metadata from the README_WCVP.xlsx
// workbook.
package iometadata

import (
	"bytes"
	"errors"
	"iter"

	"github.com/gnames/wcvp/pkg/metadata"
	"github.com/xuri/excelize/v2"
)

// Sheet is the worksheet that holds release metadata.
const Sheet = "README"

// Read opens a workbook and extracts metadata from its README worksheet.
func Read(data []byte) (metadata.Metadata, error) {
	var res metadata.Metadata

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return res, SpreadsheetError(err)
	}
	defer f.Close()

	rows, err := f.Rows(Sheet)
	if err != nil {
		var noSheet excelize.ErrSheetNotExist
		if errors.As(err, &noSheet) {
			return res, MissingSheetError(Sheet)
		}
		return res, SpreadsheetError(err)
	}
	defer rows.Close()

	var scanErr error
	res, err = metadata.Extract(cells(rows, &scanErr))
	if scanErr != nil {
		return metadata.Metadata{}, SpreadsheetError(scanErr)
	}
	return res, err
}

// cells yields non-empty cell values row by row, column by column. Reading
// stops when the consumer stops. A read failure ends the sequence and is
// stored in errp.
func cells(rows *excelize.Rows, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		for rows.Next() {
			cols, err := rows.Columns()
			if err != nil {
				*errp = err
				return
			}
			for _, v := range cols {
				if v == "" {
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
		if err := rows.Error(); err != nil {
			*errp = err
		}
	}
}
