package ioload

import (
	"context"
	"iter"

	"github.com/gnames/wcvp/pkg/record"
)

// cancellable stops a record sequence when ctx is done, yielding a
// LoadCancelledError.
func cancellable(
	ctx context.Context,
	seq iter.Seq2[record.Record, error],
) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		var count int
		for r, err := range seq {
			count++
			if count%checkEvery == 0 && ctx.Err() != nil {
				yield(record.Record{}, LoadCancelledError(count, ctx.Err()))
				return
			}
			if !yield(r, err) {
				return
			}
		}
	}
}

const checkEvery = 10_000
