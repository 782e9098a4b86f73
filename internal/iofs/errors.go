package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create <em>%s</em>"
	vars := []any{dir}
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create directory %s: %w", dir, err),
	}
}

func CopyFileError(file string, err error) error {
	msg := "Cannot write config file to <em>%s</em>"
	vars := []any{file}
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", file, err),
	}
}

func RemoveFileError(path string, err error) error {
	msg := "Cannot remove <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.RemoveFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot remove %s: %w", path, err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}
