package record

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

// UnknownVariantError is returned when a cell of an enumerated column
// holds a value outside of its vocabulary.
func UnknownVariantError(column, value string) error {
	msg := "Unknown value <em>'%s'</em> in column <em>%s</em>"
	vars := []any{value, column}
	return &gn.Error{
		Code: errcode.UnknownVariantError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown variant %q for %s", value, column),
	}
}
