package stats_test

import (
	"slices"
	"testing"

	"github.com/gnames/wcvp/pkg/record"
	"github.com/gnames/wcvp/pkg/stats"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string {
	return &s
}

func testRecords() []record.Record {
	return []record.Record{
		{ID: 1, TaxonRank: record.Genus, GeographicArea: ptr("Brazil")},
		{ID: 2, TaxonRank: record.Species, LifeformDescription: ptr("tree"), GeographicArea: ptr("Chile")},
		{ID: 3, TaxonRank: record.Species, LifeformDescription: ptr("shrub"), GeographicArea: ptr("Brazil")},
		{ID: 4, TaxonRank: record.Variety, LifeformDescription: ptr("tree")},
		{ID: 5, TaxonRank: record.NotRanked},
		{ID: 6, TaxonRank: record.Species, LifeformDescription: ptr("herb")},
	}
}

func TestCalculate(t *testing.T) {
	recs := testRecords()
	res := stats.Calculate(slices.Values(recs))

	t.Run("taxon ranks", func(t *testing.T) {
		assert.Equal(t, len(recs), stats.Total(res.TaxonRanks))
		assert.Equal(t, []stats.Count[record.TaxonRank]{
			{Key: record.Species, Count: 3},
			{Key: record.NotRanked, Count: 1},
			{Key: record.Genus, Count: 1},
			{Key: record.Variety, Count: 1},
		}, res.TaxonRanks)
	})

	t.Run("lifeforms", func(t *testing.T) {
		assert.Equal(t, 4, stats.Total(res.LifeformDescriptions))
		assert.Equal(t, []stats.Count[string]{
			{Key: "tree", Count: 2},
			{Key: "herb", Count: 1},
			{Key: "shrub", Count: 1},
		}, res.LifeformDescriptions)
	})

	t.Run("areas", func(t *testing.T) {
		assert.Equal(t, 3, stats.Total(res.GeographicAreas))
		assert.Equal(t, []stats.Count[string]{
			{Key: "Brazil", Count: 2},
			{Key: "Chile", Count: 1},
		}, res.GeographicAreas)
	})
}

func TestCalculateDeterministic(t *testing.T) {
	recs := testRecords()
	first := stats.Calculate(slices.Values(recs))
	slices.Reverse(recs)
	for range 10 {
		assert.Equal(t, first, stats.Calculate(slices.Values(recs)))
	}
}

func TestCalculateEmpty(t *testing.T) {
	res := stats.Calculate(slices.Values([]record.Record(nil)))
	assert.Empty(t, res.TaxonRanks)
	assert.Empty(t, res.LifeformDescriptions)
	assert.Empty(t, res.GeographicAreas)
	assert.Equal(t, 0, stats.Total(res.TaxonRanks))
}
