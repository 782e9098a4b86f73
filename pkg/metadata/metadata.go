// Package metadata derives WCVP release metadata from the text cells of the
// README worksheet.
//
// This package is pure: it receives cell values in document order and never
// touches spreadsheets or files itself.
package metadata

import (
	"iter"
	"strconv"
	"strings"
	"time"
)

const (
	versionMarker   = "Version"
	extractedMarker = "Extracted"
	tableMarker     = "Table"

	versionPrefix   = "Version "
	extractedPrefix = "Extracted: "
	tablePrefix     = "Table: "
	rowsSeparator   = "rows and"

	// DateLayout is day/month/year with optional leading zeros.
	DateLayout = "2/1/2006"
)

// Metadata describes a WCVP release.
type Metadata struct {
	// Version is the release of the checklist.
	Version Version `json:"version" yaml:"version"`

	// Extracted is the date the data was extracted from the WCVP database.
	Extracted time.Time `json:"extracted" yaml:"extracted"`

	// Rows is the number of rows the release declares for the names table.
	Rows uint `json:"rows" yaml:"rows"`
}

// Extract scans cells for the version, extraction date and table size
// markers. Only the first cell that starts with each marker is used, and
// scanning stops as soon as all three are found.
func Extract(cells iter.Seq[string]) (Metadata, error) {
	var res Metadata
	var version, extracted, table string
	var hasVersion, hasExtracted, hasTable bool

	for cell := range cells {
		switch {
		case !hasVersion && strings.HasPrefix(cell, versionMarker):
			version, hasVersion = cell, true
		case !hasExtracted && strings.HasPrefix(cell, extractedMarker):
			extracted, hasExtracted = cell, true
		case !hasTable && strings.HasPrefix(cell, tableMarker):
			table, hasTable = cell, true
		}
		if hasVersion && hasExtracted && hasTable {
			break
		}
	}

	if !hasVersion {
		return res, EmptyVersionError()
	}
	v, err := ParseVersion(version)
	if err != nil {
		return res, err
	}

	if !hasExtracted {
		return res, EmptyExtractedDateError()
	}
	date, err := ParseExtracted(extracted)
	if err != nil {
		return res, err
	}

	if !hasTable {
		return res, EmptyRowCountError()
	}
	rows, err := ParseRowCount(table)
	if err != nil {
		return res, err
	}

	res = Metadata{Version: v, Extracted: date, Rows: rows}
	return res, nil
}

// ParseVersion converts a cell like `Version 15` or `Version "15"` into a
// known release.
func ParseVersion(cell string) (Version, error) {
	s := strings.ReplaceAll(cell, versionPrefix, "")
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, InvalidVersionTextError(cell, err)
	}
	return NewVersion(uint(n))
}

// ParseExtracted converts a cell like `Extracted: 04/03/2021` into a date.
func ParseExtracted(cell string) (time.Time, error) {
	s := strings.ReplaceAll(cell, extractedPrefix, "")
	res, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, DateParseError(cell, err)
	}
	return res, nil
}

// ParseRowCount converts a cell like `Table: 1,234 rows and 9 columns`
// into the number of rows.
func ParseRowCount(cell string) (uint, error) {
	left, _, ok := strings.Cut(cell, rowsSeparator)
	if !ok {
		return 0, InvalidRowCountError(cell, nil)
	}
	s := strings.ReplaceAll(left, tablePrefix, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, InvalidRowCountError(cell, err)
	}
	return uint(n), nil
}
