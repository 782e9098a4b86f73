package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

// ExportPostgresError is returned when a step of PostgreSQL export fails.
// No data is changed in this case.
func ExportPostgresError(step string, err error) error {
	msg := `PostgreSQL export failed at step <em>%s</em>

<em>How to fix:</em>
  1. Check database user has INSERT and DELETE permissions
  2. Recreate tables with 'wcvp export --force'`
	vars := []any{step}

	return &gn.Error{
		Code: errcode.ExportPostgresError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("postgres export, %s: %w", step, err),
	}
}

// ExportSQLiteError is returned when the SQLite file cannot be written.
func ExportSQLiteError(path string, err error) error {
	msg := "Cannot write SQLite database <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportSQLiteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sqlite export to %s: %w", path, err),
	}
}
