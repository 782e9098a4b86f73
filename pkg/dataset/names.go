package dataset

import (
	"runtime"
	"slices"
	"sync"

	"github.com/gnames/wcvp/pkg/parserpool"
	"github.com/gnames/wcvp/pkg/record"
	"golang.org/x/sync/errgroup"
)

// ByName finds records whose taxon_name has the same simple canonical form
// as name. Authorship and rank markers in name are ignored, so
// "Rosa acicularis var. acicularis Lindl." finds the trinomial.
//
// The canonical index is built on the first call. After Close it returns
// nil.
func (d *Dataset) ByName(name string) []record.Record {
	d.namesOnce.Do(d.buildNames)

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.pool == nil {
		return nil
	}

	canonical, ok := d.pool.Canonical(name)
	if !ok {
		return nil
	}

	ids := d.names[canonical]
	res := make([]record.Record, 0, len(ids))
	for _, id := range ids {
		res = append(res, d.index.records[id])
	}
	return res
}

// Canonical returns the simple canonical form of the record's taxon_name.
// It is false for names the parser could not parse.
func (d *Dataset) Canonical(id int) (string, bool) {
	d.namesOnce.Do(d.buildNames)
	res, ok := d.canonicals[id]
	return res, ok
}

func (d *Dataset) buildNames() {
	jobs := d.jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	d.names = make(map[string][]int)
	d.canonicals = make(map[int]string, len(d.index.order))

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.pool = parserpool.NewPool(jobs)

	var mu sync.Mutex
	var g errgroup.Group

	for chunk := range slices.Chunk(d.index.order, chunkSize(len(d.index.order), jobs)) {
		g.Go(func() error {
			local := make(map[string][]int)
			canonicals := make(map[int]string, len(chunk))
			for _, id := range chunk {
				r := d.index.records[id]
				if canonical, ok := d.pool.Canonical(r.TaxonName); ok {
					local[canonical] = append(local[canonical], id)
					canonicals[id] = canonical
				}
			}

			mu.Lock()
			defer mu.Unlock()
			for k, v := range local {
				d.names[k] = append(d.names[k], v...)
			}
			for k, v := range canonicals {
				d.canonicals[k] = v
			}
			return nil
		})
	}
	// workers never fail
	_ = g.Wait()

	for _, v := range d.names {
		slices.Sort(v)
	}
}

func chunkSize(total, jobs int) int {
	res := total / jobs
	if total%jobs != 0 {
		res++
	}
	return max(res, 1)
}
