package iorecords

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

// HeaderError is returned when the header of the names table is absent or
// does not name every column.
func HeaderError(err error) error {
	msg := `Names table has an invalid header

<em>Expected columns:</em> plant_name_id|ipni_id|...|reviewed`

	return &gn.Error{
		Code: errcode.DelimitedParseError,
		Msg:  msg,
		Err:  fmt.Errorf("names table header: %w", err),
	}
}

// DelimitedParseError is returned when a line of the names table cannot be
// decoded into a record.
func DelimitedParseError(line int, err error) error {
	msg := "Cannot parse names table at line <em>%d</em>"
	vars := []any{line}

	return &gn.Error{
		Code: errcode.DelimitedParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("names table line %d: %w", line, err),
	}
}
