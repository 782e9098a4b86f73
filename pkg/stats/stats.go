// Package stats computes frequency tables over WCVP records.
package stats

import (
	"cmp"
	"iter"
	"slices"

	"github.com/gnames/wcvp/pkg/record"
)

// Count is the number of records that share the same Key.
type Count[K any] struct {
	Key   K   `json:"key"   yaml:"key"`
	Count int `json:"count" yaml:"count"`
}

// Statistics keeps frequency tables, each sorted by descending count.
// Ties are ordered by ascending key text.
type Statistics struct {
	// TaxonRanks counts every record by its rank.
	TaxonRanks []Count[record.TaxonRank] `json:"taxonRanks" yaml:"taxon_ranks"`

	// LifeformDescriptions counts records that have a lifeform description.
	LifeformDescriptions []Count[string] `json:"lifeformDescriptions" yaml:"lifeform_descriptions"`

	// GeographicAreas counts records that have a geographic area.
	GeographicAreas []Count[string] `json:"geographicAreas" yaml:"geographic_areas"`
}

// Calculate builds Statistics in one pass over records.
func Calculate(records iter.Seq[record.Record]) Statistics {
	ranks := make(map[record.TaxonRank]int)
	lifeforms := make(map[string]int)
	areas := make(map[string]int)

	for r := range records {
		ranks[r.TaxonRank]++
		if r.LifeformDescription != nil {
			lifeforms[*r.LifeformDescription]++
		}
		if r.GeographicArea != nil {
			areas[*r.GeographicArea]++
		}
	}

	return Statistics{
		TaxonRanks:           sorted(ranks, record.TaxonRank.String),
		LifeformDescriptions: sorted(lifeforms, func(s string) string { return s }),
		GeographicAreas:      sorted(areas, func(s string) string { return s }),
	}
}

// Total sums the counts of a table.
func Total[K any](counts []Count[K]) int {
	var res int
	for _, v := range counts {
		res += v.Count
	}
	return res
}

func sorted[K comparable](m map[K]int, text func(K) string) []Count[K] {
	res := make([]Count[K], 0, len(m))
	for k, v := range m {
		res = append(res, Count[K]{Key: k, Count: v})
	}
	slices.SortFunc(res, func(a, b Count[K]) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(text(a.Key), text(b.Key))
	})
	return res
}
