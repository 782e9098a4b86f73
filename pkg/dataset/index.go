package dataset

import (
	"iter"

	"github.com/gnames/wcvp/pkg/record"
)

// Index keeps records by their plant_name_id and maps powo_id to
// plant_name_id.
//
// A record with an already indexed ID replaces the earlier one, and the same
// applies to powo_id. Such replacements are counted, see Duplicates.
type Index struct {
	records map[int]record.Record
	powo    map[string]int
	// order keeps IDs in the order they were first seen.
	order []int
	dups  Duplicates
}

// Duplicates counts keys that were overwritten while indexing.
type Duplicates struct {
	// IDs is the number of records replaced by a later record with the
	// same plant_name_id.
	IDs int `json:"ids" yaml:"ids"`

	// PowoIDs is the number of powo_id entries that were redirected to a
	// later record.
	PowoIDs int `json:"powoIds" yaml:"powo_ids"`
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{
		records: make(map[int]record.Record),
		powo:    make(map[string]int),
	}
}

// Add indexes a record.
func (ix *Index) Add(r record.Record) {
	if old, ok := ix.records[r.ID]; ok {
		ix.dups.IDs++
		// the replaced record must not stay reachable by its powo_id
		if old.PowoID != r.PowoID && ix.powo[old.PowoID] == r.ID {
			delete(ix.powo, old.PowoID)
		}
	} else {
		ix.order = append(ix.order, r.ID)
	}
	ix.records[r.ID] = r

	if id, ok := ix.powo[r.PowoID]; ok && id != r.ID {
		ix.dups.PowoIDs++
	}
	ix.powo[r.PowoID] = r.ID
}

// BuildIndex consumes records in one pass. The first error stops indexing
// and is returned unchanged.
func BuildIndex(records iter.Seq2[record.Record, error]) (*Index, error) {
	res := NewIndex()
	for r, err := range records {
		if err != nil {
			return nil, err
		}
		res.Add(r)
	}
	return res, nil
}

// Len returns the number of unique plant_name_id values.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Duplicates returns counts of overwritten keys.
func (ix *Index) Duplicates() Duplicates {
	return ix.dups
}
