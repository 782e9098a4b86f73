package ioarchive

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
)

// InvalidArchiveError is returned when bytes are not a zip container.
func InvalidArchiveError(err error) error {
	msg := `Data is not a valid zip archive

<em>How to fix:</em>
  1. Download the archive again with 'wcvp fetch'
  2. Check that the file is the WCVP 'wcvp.zip' release`

	return &gn.Error{
		Code: errcode.ArchiveError,
		Msg:  msg,
		Err:  fmt.Errorf("invalid zip archive: %w", err),
	}
}

// MissingEntryError is returned when the archive has no entry with the
// requested name.
func MissingEntryError(name string) error {
	msg := "Archive does not contain <em>%s</em>"
	vars := []any{name}

	return &gn.Error{
		Code: errcode.ArchiveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("entry %s not found", name),
	}
}

// EntryReadError is returned when an entry cannot be decompressed.
func EntryReadError(name string, err error) error {
	msg := "Cannot decompress <em>%s</em>"
	vars := []any{name}

	return &gn.Error{
		Code: errcode.ArchiveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("read entry %s: %w", name, err),
	}
}

// FileReadError is returned when a local archive cannot be read.
func FileReadError(path string, err error) error {
	msg := "Cannot read archive file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("read %s: %w", path, err),
	}
}

// NetworkError is returned when the archive cannot be downloaded.
func NetworkError(url string, err error) error {
	msg := `Cannot download WCVP archive

<em>URL:</em> %s

<em>How to fix:</em>
  1. Check network connection
  2. Increase archive timeout in config.yaml
  3. Set another URL with WCVP_ARCHIVE_URL`
	vars := []any{url}

	return &gn.Error{
		Code: errcode.NetworkError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("download %s: %w", url, err),
	}
}

// StatusError is returned when the server answers with a status other than
// 200 OK.
func StatusError(url string, status int) error {
	msg := "Server returned status <em>%d</em> for <em>%s</em>"
	vars := []any{status, url}

	return &gn.Error{
		Code: errcode.NetworkError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("download %s: status %d", url, status),
	}
}

// CacheWriteError is returned when a downloaded archive cannot be saved.
func CacheWriteError(path string, err error) error {
	msg := "Cannot save archive to <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("save %s: %w", path, err),
	}
}
