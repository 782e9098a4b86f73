// Package iorecords decodes the pipe-delimited WCVP names table into
// records.
package iorecords

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"iter"

	"github.com/gnames/wcvp/pkg/record"
	"github.com/jszwec/csvutil"
)

// Delimiter separates fields of the names table.
const Delimiter = '|'

var (
	bom = []byte("\ufeff")

	unmarshalers = csvutil.NewUnmarshalers(
		csvutil.UnmarshalFunc(func(data []byte, b *bool) error {
			res, err := record.ParseReviewed(string(data))
			if err != nil {
				return err
			}
			*b = res
			return nil
		}),
	)
)

// Parse lazily decodes records from the table. Columns are matched by the
// header row, extra columns are ignored. The first failure is yielded with
// an empty record and ends the sequence.
func Parse(data []byte) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, bom)))
		cr.Comma = Delimiter
		cr.LazyQuotes = true

		dec, err := csvutil.NewDecoder(cr)
		if err != nil {
			yield(record.Record{}, HeaderError(err))
			return
		}
		dec.DisallowMissingColumns = true
		dec.WithUnmarshalers(unmarshalers)

		for {
			var r record.Record
			err = dec.Decode(&r)
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(record.Record{}, decodeError(cr, dec, err))
				return
			}
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Collect decodes the whole table.
func Collect(data []byte) ([]record.Record, error) {
	var res []record.Record
	for r, err := range Parse(data) {
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func decodeError(cr *csv.Reader, dec *csvutil.Decoder, err error) error {
	var missing *csvutil.MissingColumnsError
	if errors.As(err, &missing) {
		return HeaderError(err)
	}

	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return DelimitedParseError(pe.Line, err)
	}

	var line int
	if len(dec.Record()) > 0 {
		line, _ = cr.FieldPos(0)
	}
	return DelimitedParseError(line, err)
}
