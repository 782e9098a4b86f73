package metadata

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

// InvalidVersionError is returned for a release number that is not
// supported.
func InvalidVersionError(n uint) error {
	msg := `Unsupported WCVP version <em>%d</em>
Supported versions: <em>%v</em>`
	vars := []any{n, supported()}
	return &gn.Error{
		Code: errcode.InvalidVersionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid version: %d", n),
	}
}

// InvalidVersionTextError is returned when the version cell does not
// contain a number.
func InvalidVersionTextError(cell string, err error) error {
	msg := "Cannot read WCVP version from <em>'%s'</em>"
	vars := []any{cell}
	return &gn.Error{
		Code: errcode.InvalidVersionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid version %q: %w", cell, err),
	}
}

func EmptyVersionError() error {
	msg := "README does not contain a <em>Version</em> cell"
	return &gn.Error{
		Code: errcode.EmptyVersionError,
		Msg:  msg,
		Err:  fmt.Errorf("empty version"),
	}
}

// DateParseError is returned when the extraction date does not follow the
// day/month/year format.
func DateParseError(cell string, err error) error {
	msg := "Cannot parse extraction date from <em>'%s'</em>"
	vars := []any{cell}
	return &gn.Error{
		Code: errcode.DateParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse date %q: %w", cell, err),
	}
}

func EmptyExtractedDateError() error {
	msg := "README does not contain an <em>Extracted</em> cell"
	return &gn.Error{
		Code: errcode.EmptyExtractedDateError,
		Msg:  msg,
		Err:  fmt.Errorf("empty extracted date"),
	}
}

// InvalidRowCountError is returned when the table cell does not declare
// the number of rows. The cause can be nil.
func InvalidRowCountError(cell string, err error) error {
	msg := "Cannot read number of rows from <em>'%s'</em>"
	vars := []any{cell}
	cause := fmt.Errorf("invalid row count: %q", cell)
	if err != nil {
		cause = fmt.Errorf("invalid row count %q: %w", cell, err)
	}
	return &gn.Error{
		Code: errcode.InvalidRowCountError,
		Msg:  msg,
		Vars: vars,
		Err:  cause,
	}
}

func EmptyRowCountError() error {
	msg := "README does not contain a <em>Table</em> cell"
	return &gn.Error{
		Code: errcode.EmptyRowCountError,
		Msg:  msg,
		Err:  fmt.Errorf("empty row count"),
	}
}

func supported() []uint {
	return slices.Sorted(maps.Keys(knownVersions))
}
