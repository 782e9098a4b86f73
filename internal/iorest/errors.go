package iorest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

// ServerError is returned when the API cannot listen or shut down.
func ServerError(port int, err error) error {
	msg := `WCVP API failed on port <em>%d</em>

<em>How to fix:</em>
  1. Make sure the port is not used by another program
  2. Choose another port with 'wcvp serve --port'`
	vars := []any{port}

	return &gn.Error{
		Code: errcode.ServerError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("server on port %d: %w", port, err),
	}
}
