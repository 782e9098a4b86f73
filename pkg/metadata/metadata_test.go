package metadata_test

import (
	"errors"
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
	"github.com/gnames/wcvp/pkg/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "error should be *gn.Error")
	return gnErr.Code
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   metadata.Version
		code  gn.ErrorCode
	}{
		{"plain", "Version 15", metadata.V15, 0},
		{"quoted", `Version "15"`, metadata.V15, 0},
		{"trailing space", "Version 15 ", metadata.V15, 0},
		{"unknown", "Version 16", 0, errcode.InvalidVersionError},
		{"not a number", "Version fifteen", 0, errcode.InvalidVersionError},
		{"negative", "Version -15", 0, errcode.InvalidVersionError},
	}

	for _, v := range tests {
		res, err := metadata.ParseVersion(v.input)
		if v.code != 0 {
			require.Error(t, err, v.msg)
			assert.Equal(t, v.code, errCode(t, err), v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestInvalidVersionVars(t *testing.T) {
	_, err := metadata.NewVersion(16)
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, uint(16), gnErr.Vars[0])
	assert.Contains(t, gnErr.Err.Error(), "16")
}

func TestParseExtracted(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   time.Time
		err   bool
	}{
		{
			msg:   "day first",
			input: "Extracted: 04/03/2021",
			res:   time.Date(2021, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			msg:   "no leading zeros",
			input: "Extracted: 4/3/2021",
			res:   time.Date(2021, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			msg:   "late day",
			input: "Extracted: 25/12/2023",
			res:   time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{msg: "month first", input: "Extracted: 12/25/2023", err: true},
		{msg: "iso", input: "Extracted: 2023-12-25", err: true},
		{msg: "garbage", input: "Extracted: soon", err: true},
	}

	for _, v := range tests {
		res, err := metadata.ParseExtracted(v.input)
		if v.err {
			require.Error(t, err, v.msg)
			assert.Equal(t, errcode.DateParseError, errCode(t, err), v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.True(t, v.res.Equal(res), v.msg)
	}
}

func TestParseRowCount(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   uint
		err   bool
	}{
		{"with comma", "Table: 1,234 rows and 9 columns", 1234, false},
		{"large", "Table: 1,441,395 rows and 33 columns", 1441395, false},
		{"no comma", "Table: 12 rows and 31 columns", 12, false},
		{"no marker", "Table: 1,234 records", 0, true},
		{"not a number", "Table: many rows and 9 columns", 0, true},
	}

	for _, v := range tests {
		res, err := metadata.ParseRowCount(v.input)
		if v.err {
			require.Error(t, err, v.msg)
			assert.Equal(t, errcode.InvalidRowCountError, errCode(t, err), v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestExtract(t *testing.T) {
	t.Run("cells in any order", func(t *testing.T) {
		cells := []string{
			"World Checklist of Vascular Plants",
			"Table: 1,234 rows and 31 columns",
			"",
			"Extracted: 04/03/2021",
			"Version 15",
		}
		res, err := metadata.Extract(slices.Values(cells))
		require.NoError(t, err)
		assert.Equal(t, metadata.V15, res.Version)
		assert.Equal(t, uint(1234), res.Rows)
		assert.Equal(t, 2021, res.Extracted.Year())
		assert.Equal(t, time.March, res.Extracted.Month())
		assert.Equal(t, 4, res.Extracted.Day())
	})

	t.Run("first match wins", func(t *testing.T) {
		cells := []string{
			"Version 15",
			"Version 16",
			"Extracted: 04/03/2021",
			"Table: 10 rows and 31 columns",
		}
		res, err := metadata.Extract(slices.Values(cells))
		require.NoError(t, err)
		assert.Equal(t, metadata.V15, res.Version)
	})

	t.Run("stops after all markers", func(t *testing.T) {
		var seen int
		cells := []string{
			"Version 15",
			"Extracted: 04/03/2021",
			"Table: 10 rows and 31 columns",
			"Version 16",
			"Table: broken",
		}
		seq := func(yield func(string) bool) {
			for _, c := range cells {
				seen++
				if !yield(c) {
					return
				}
			}
		}
		_, err := metadata.Extract(iter.Seq[string](seq))
		require.NoError(t, err)
		assert.Equal(t, 3, seen)
	})

	t.Run("missing markers", func(t *testing.T) {
		tests := []struct {
			msg   string
			cells []string
			code  gn.ErrorCode
		}{
			{
				msg:   "no version",
				cells: []string{"Extracted: 04/03/2021", "Table: 1 rows and 2 columns"},
				code:  errcode.EmptyVersionError,
			},
			{
				msg:   "no date",
				cells: []string{"Version 15", "Table: 1 rows and 2 columns"},
				code:  errcode.EmptyExtractedDateError,
			},
			{
				msg:   "no table",
				cells: []string{"Version 15", "Extracted: 04/03/2021"},
				code:  errcode.EmptyRowCountError,
			},
			{
				msg:   "bad version",
				cells: []string{"Version 16", "Extracted: 04/03/2021", "Table: 1 rows and 2 columns"},
				code:  errcode.InvalidVersionError,
			},
			{
				msg:   "nothing",
				cells: nil,
				code:  errcode.EmptyVersionError,
			},
		}

		for _, v := range tests {
			_, err := metadata.Extract(slices.Values(v.cells))
			require.Error(t, err, v.msg)
			assert.Equal(t, v.code, errCode(t, err), v.msg)
		}
	})
}
