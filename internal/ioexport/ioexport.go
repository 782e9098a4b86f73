// Package ioexport writes loaded WCVP datasets to PostgreSQL and SQLite.
// This is an impure I/O package that implements lifecycle.Exporter.
package ioexport

import (
	"iter"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/gnames/wcvp/pkg/schema"
)

// names converts records to table rows in the order of the names table.
func names(d *dataset.Dataset) iter.Seq[schema.Name] {
	return func(yield func(schema.Name) bool) {
		for r := range d.All() {
			canonical, _ := d.Canonical(r.ID)
			if !yield(schema.NewName(r, canonical)) {
				return
			}
		}
	}
}

// newBar returns nil when progress is off. Methods of a nil bar must not
// be called, use add and finish.
func newBar(total int, prefix string, show bool) *pb.ProgressBar {
	if !show {
		return nil
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

func add(bar *pb.ProgressBar, n int) {
	if bar != nil {
		bar.Add(n)
	}
}

func finish(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Finish()
	}
}
