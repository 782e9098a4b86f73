// Package dataset provides the read-only query surface over a loaded WCVP
// release: metadata, point lookups, iteration and statistics.
//
// A Dataset is safe for concurrent readers. Statistics and the name index are
// computed on first use and cached for the lifetime of the Dataset.
package dataset

import (
	"iter"
	"strconv"
	"sync"

	"github.com/gnames/wcvp/pkg/metadata"
	"github.com/gnames/wcvp/pkg/parserpool"
	"github.com/gnames/wcvp/pkg/record"
	"github.com/gnames/wcvp/pkg/stats"
)

// Dataset is a fully materialized WCVP release.
type Dataset struct {
	meta  metadata.Metadata
	index *Index
	jobs  int

	statsOnce sync.Once
	stats     stats.Statistics

	namesOnce  sync.Once
	names      map[string][]int
	canonicals map[int]string

	// mu guards pool and closed.
	mu     sync.RWMutex
	pool   parserpool.Pool
	closed bool
}

// Option configures a Dataset.
type Option func(*Dataset)

// OptJobsNumber sets how many parsers build the name index.
func OptJobsNumber(i int) Option {
	return func(d *Dataset) {
		if i > 0 {
			d.jobs = i
		}
	}
}

// New creates a Dataset from validated metadata and a complete index.
func New(meta metadata.Metadata, ix *Index, opts ...Option) *Dataset {
	res := &Dataset{meta: meta, index: ix}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Metadata returns release metadata.
func (d *Dataset) Metadata() metadata.Metadata {
	return d.meta
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return d.index.Len()
}

// Duplicates reports keys that were overwritten while indexing.
func (d *Dataset) Duplicates() Duplicates {
	return d.index.Duplicates()
}

// ByID returns the record with the given plant_name_id.
func (d *Dataset) ByID(id int) (record.Record, bool) {
	res, ok := d.index.records[id]
	return res, ok
}

// ByPowoID returns the record with the given Plants of the World Online
// identifier.
func (d *Dataset) ByPowoID(powoID string) (record.Record, bool) {
	id, ok := d.index.powo[powoID]
	if !ok {
		return record.Record{}, false
	}
	return d.ByID(id)
}

// All iterates over records in the order their IDs first appeared in the
// names table.
func (d *Dataset) All() iter.Seq[record.Record] {
	return func(yield func(record.Record) bool) {
		for _, id := range d.index.order {
			if !yield(d.index.records[id]) {
				return
			}
		}
	}
}

// Statistics returns frequency tables. They are calculated once.
func (d *Dataset) Statistics() stats.Statistics {
	d.statsOnce.Do(func() {
		d.stats = stats.Calculate(d.All())
	})
	return d.stats
}

// Verify compares the number of records with the number of rows declared
// by the release metadata.
func (d *Dataset) Verify() error {
	if uint(d.Len()) != d.meta.Rows {
		return RowCountMismatchError(d.meta.Rows, d.Len(), d.Duplicates())
	}
	return nil
}

// Accepted resolves the accepted name of a record.
func (d *Dataset) Accepted(r record.Record) (record.Record, bool) {
	return d.resolve(r.AcceptedPlantNameID)
}

// Basionym resolves the basionym or replaced synonym of a record.
func (d *Dataset) Basionym(r record.Record) (record.Record, bool) {
	return d.resolve(r.BasionymPlantNameID)
}

// Parent resolves the parent genus or species of a record.
func (d *Dataset) Parent(r record.Record) (record.Record, bool) {
	return d.resolve(r.ParentPlantNameID)
}

func (d *Dataset) resolve(ref *string) (record.Record, bool) {
	if ref == nil {
		return record.Record{}, false
	}
	id, err := strconv.Atoi(*ref)
	if err != nil {
		return record.Record{}, false
	}
	return d.ByID(id)
}

// Close releases parsers created for name lookups. It is safe to call more
// than once and concurrently with ByName.
func (d *Dataset) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.pool != nil {
		d.pool.Close()
		d.pool = nil
	}
}
