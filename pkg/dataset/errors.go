package dataset

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

// RowCountMismatchError is returned by Verify when the names table does not
// hold as many records as README declares.
func RowCountMismatchError(rows uint, records int, dups Duplicates) error {
	msg := `README declares <em>%d</em> rows, found <em>%d</em> records
Overwritten plant_name_id duplicates: <em>%d</em>`
	vars := []any{rows, records, dups.IDs}
	return &gn.Error{
		Code: errcode.RowCountMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"row count mismatch: declared %d, found %d", rows, records,
		),
	}
}
