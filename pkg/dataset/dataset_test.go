package dataset_test

import (
	"errors"
	"iter"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/gnames/wcvp/pkg/errcode"
	"github.com/gnames/wcvp/pkg/metadata"
	"github.com/gnames/wcvp/pkg/record"
	"github.com/gnames/wcvp/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func testRecords() []record.Record {
	return []record.Record{
		{
			ID: 1, PowoID: "p-1", TaxonName: "Bellis",
			TaxonRank: record.Genus, TaxonStatus: record.Accepted,
			Family: "Asteraceae", Genus: "Bellis",
			AcceptedPlantNameID: ptr("1"),
		},
		{
			ID: 2, PowoID: "p-2", TaxonName: "Bellis perennis",
			TaxonRank: record.Species, TaxonStatus: record.Accepted,
			Family: "Asteraceae", Genus: "Bellis", Species: ptr("perennis"),
			TaxonAuthors:        ptr("L."),
			AcceptedPlantNameID: ptr("2"), ParentPlantNameID: ptr("1"),
			LifeformDescription: ptr("hemicryptophyte"),
			GeographicArea:      ptr("Europe"),
		},
		{
			ID: 3, PowoID: "p-3", TaxonName: "Bellis hortensis",
			TaxonRank: record.Species, TaxonStatus: record.Synonym,
			Family: "Asteraceae", Genus: "Bellis", Species: ptr("hortensis"),
			AcceptedPlantNameID: ptr("2"), BasionymPlantNameID: ptr("not-an-id"),
		},
	}
}

func meta(rows uint) metadata.Metadata {
	return metadata.Metadata{
		Version:   metadata.V15,
		Extracted: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC),
		Rows:      rows,
	}
}

func newDataset(t *testing.T, recs []record.Record, rows uint) *dataset.Dataset {
	t.Helper()
	ix := dataset.NewIndex()
	for _, r := range recs {
		ix.Add(r)
	}
	d := dataset.New(meta(rows), ix, dataset.OptJobsNumber(2))
	t.Cleanup(d.Close)
	return d
}

func TestLookups(t *testing.T) {
	recs := testRecords()
	d := newDataset(t, recs, 3)

	assert.Equal(t, 3, d.Len())
	require.NoError(t, d.Verify())

	for _, r := range recs {
		res, ok := d.ByID(r.ID)
		require.True(t, ok)
		assert.Equal(t, r, res)

		res, ok = d.ByPowoID(r.PowoID)
		require.True(t, ok)
		assert.Equal(t, r, res)
	}

	_, ok := d.ByID(42)
	assert.False(t, ok)
	_, ok = d.ByPowoID("p-42")
	assert.False(t, ok)
}

func TestAllKeepsOrder(t *testing.T) {
	recs := testRecords()
	slices.Reverse(recs)
	d := newDataset(t, recs, 3)

	var ids []int
	for r := range d.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{3, 2, 1}, ids)

	// early exit
	for r := range d.All() {
		assert.Equal(t, 3, r.ID)
		break
	}
}

func TestDuplicates(t *testing.T) {
	recs := testRecords()
	dupID := recs[1]
	dupID.TaxonName = "Bellis perennis var. perennis"
	dupID.PowoID = "p-2b"
	dupPowo := record.Record{ID: 4, PowoID: "p-3", TaxonName: "Bellis sylvestris"}
	recs = append(recs, dupID, dupPowo)

	d := newDataset(t, recs, 5)

	assert.Equal(t, 4, d.Len())
	assert.Equal(t, dataset.Duplicates{IDs: 1, PowoIDs: 1}, d.Duplicates())

	res, ok := d.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Bellis perennis var. perennis", res.TaxonName)

	_, ok = d.ByPowoID("p-2")
	assert.False(t, ok, "replaced record is not reachable by its old powo_id")

	res, ok = d.ByPowoID("p-3")
	require.True(t, ok)
	assert.Equal(t, 4, res.ID)

	res, ok = d.ByPowoID("p-2b")
	require.True(t, ok)
	assert.Equal(t, 2, res.ID)

	err := d.Verify()
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.RowCountMismatchError, gnErr.Code)
	assert.Equal(t, uint(5), gnErr.Vars[0])
	assert.Equal(t, 4, gnErr.Vars[1])
}

func TestBuildIndex(t *testing.T) {
	recs := testRecords()

	t.Run("all records", func(t *testing.T) {
		seq := func(yield func(record.Record, error) bool) {
			for _, r := range recs {
				if !yield(r, nil) {
					return
				}
			}
		}
		ix, err := dataset.BuildIndex(iter.Seq2[record.Record, error](seq))
		require.NoError(t, err)
		assert.Equal(t, len(recs), ix.Len())
	})

	t.Run("error aborts", func(t *testing.T) {
		boom := errors.New("boom")
		seq := func(yield func(record.Record, error) bool) {
			if !yield(recs[0], nil) {
				return
			}
			yield(record.Record{}, boom)
		}
		ix, err := dataset.BuildIndex(iter.Seq2[record.Record, error](seq))
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, ix)
	})
}

func TestStatisticsMemoized(t *testing.T) {
	d := newDataset(t, testRecords(), 3)

	var wg sync.WaitGroup
	results := make([]stats.Statistics, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = d.Statistics()
		}()
	}
	wg.Wait()

	for _, v := range results[1:] {
		assert.Equal(t, results[0], v)
	}

	res := results[0]
	assert.Equal(t, d.Len(), stats.Total(res.TaxonRanks))
	assert.Equal(t, record.Species, res.TaxonRanks[0].Key)
	assert.Equal(t, 1, stats.Total(res.LifeformDescriptions))
	assert.Equal(t, 1, stats.Total(res.GeographicAreas))
}

func TestRelations(t *testing.T) {
	d := newDataset(t, testRecords(), 3)

	syn, ok := d.ByID(3)
	require.True(t, ok)

	acc, ok := d.Accepted(syn)
	require.True(t, ok)
	assert.Equal(t, 2, acc.ID)

	parent, ok := d.Parent(acc)
	require.True(t, ok)
	assert.Equal(t, 1, parent.ID)

	_, ok = d.Parent(parent)
	assert.False(t, ok, "no parent id")

	_, ok = d.Basionym(syn)
	assert.False(t, ok, "id is not a number")
}

func TestByName(t *testing.T) {
	d := newDataset(t, testRecords(), 3)

	tests := []struct {
		msg   string
		input string
		ids   []int
	}{
		{"uninomial", "Bellis", []int{1}},
		{"binomial", "Bellis perennis", []int{2}},
		{"with authors", "Bellis perennis L.", []int{2}},
		{"unknown", "Bellis annua", nil},
	}

	for _, v := range tests {
		var ids []int
		for _, r := range d.ByName(v.input) {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, v.ids, ids, v.msg)
	}
}

func TestCanonical(t *testing.T) {
	d := newDataset(t, testRecords(), 3)

	res, ok := d.Canonical(2)
	require.True(t, ok)
	assert.Equal(t, "Bellis perennis", res)

	_, ok = d.Canonical(42)
	assert.False(t, ok)
}

func TestClose(t *testing.T) {
	d := newDataset(t, testRecords(), 3)
	require.Len(t, d.ByName("Bellis"), 1)

	d.Close()
	d.Close()
	assert.Nil(t, d.ByName("Bellis perennis"))
	res, ok := d.Canonical(2)
	require.True(t, ok)
	assert.Equal(t, "Bellis perennis", res)

	d = newDataset(t, testRecords(), 3)
	d.Close()
	assert.NotPanics(t, func() {
		assert.Nil(t, d.ByName("Bellis"))
	})
	_, ok = d.Canonical(2)
	assert.False(t, ok)
}

func TestCloseConcurrent(t *testing.T) {
	d := newDataset(t, testRecords(), 3)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				_ = d.ByName("Bellis perennis")
			}
		}()
	}
	d.Close()
	wg.Wait()
	assert.Nil(t, d.ByName("Bellis"))
}
