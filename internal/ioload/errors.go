package ioload

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

// LoadCancelledError is returned when loading stops because the context is
// done. Cancellation is detected by errcode.LoadCancelledError, the context
// error is kept in gn.Error.Err.
func LoadCancelledError(records int, err error) error {
	msg := "Loading cancelled after <em>%d</em> records"
	vars := []any{records}

	return &gn.Error{
		Code: errcode.LoadCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}

// cancelled replaces err with LoadCancelledError when ctx is done, so
// cancellation has the same shape whichever stage it interrupts.
func cancelled(ctx context.Context, err error) error {
	ctxErr := ctx.Err()
	if err == nil || ctxErr == nil {
		return err
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Code == errcode.LoadCancelledError {
		return err
	}
	return LoadCancelledError(0, ctxErr)
}
