// Package ioarchive reads the WCVP zip container from a local file or from
// the network.
//
// The whole container is kept in memory. Entries are decompressed on demand
// and returned as complete byte slices.
package ioarchive

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/klauspost/compress/zip"
)

const (
	// MetadataEntry is the spreadsheet with release metadata.
	MetadataEntry = "README_WCVP.xlsx"

	// NamesEntry is the pipe-delimited table of plant names.
	NamesEntry = "wcvp_names.csv"
)

// Archive is an opened zip container. It is read-only and safe for
// concurrent use.
type Archive struct {
	size int
	zr   *zip.Reader
}

// Open validates data as a zip container.
func Open(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, InvalidArchiveError(err)
	}
	return &Archive{size: len(data), zr: zr}, nil
}

// FromFile reads and opens an archive from a local path.
func FromFile(ctx context.Context, path string) (*Archive, error) {
	if err := ctx.Err(); err != nil {
		return nil, FileReadError(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FileReadError(path, err)
	}
	slog.Info("Read WCVP archive", "path", path, "bytes", len(data))

	return Open(data)
}

// Size returns the number of bytes in the container.
func (a *Archive) Size() int {
	return a.size
}

// Entries returns the names of all entries in the container.
func (a *Archive) Entries() []string {
	res := make([]string, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		res = append(res, f.Name)
	}
	return res
}

// ReadEntry decompresses the named entry completely.
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	f, err := a.zr.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, MissingEntryError(name)
	}
	if err != nil {
		return nil, EntryReadError(name, err)
	}
	defer f.Close()

	res, err := io.ReadAll(f)
	if err != nil {
		return nil, EntryReadError(name, err)
	}
	return res, nil
}
