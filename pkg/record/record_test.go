package record_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/errcode"
	"github.com/gnames/wcvp/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReviewed(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   bool
		err   bool
	}{
		{"yes", "Y", true, false},
		{"no", "N", false, false},
		{"empty", "", false, false},
		{"lowercase", "y", false, true},
		{"word", "Yes", false, true},
		{"space", " ", false, true},
	}

	for _, v := range tests {
		res, err := record.ParseReviewed(v.input)
		if v.err {
			require.Error(t, err, v.msg)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, v.msg)
			assert.Equal(t, errcode.UnknownVariantError, gnErr.Code, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestTaxonRank(t *testing.T) {
	tests := []struct {
		input string
		res   record.TaxonRank
	}{
		{"", record.NotRanked},
		{"Species", record.Species},
		{"Genus", record.Genus},
		{"Variety", record.Variety},
		{"nothosubsp.", record.NothoSubspecies},
		{"microgène", record.Microgene},
		{"microg√®ne", record.Microgene},
		{"positio", record.Positio},
	}

	for _, v := range tests {
		var rank record.TaxonRank
		err := rank.UnmarshalText([]byte(v.input))
		require.NoError(t, err, v.input)
		assert.Equal(t, v.res, rank, v.input)
	}

	_, err := record.NewTaxonRank("species")
	assert.Error(t, err)

	assert.Equal(t, "", record.NotRanked.String())
	assert.Equal(t, "not ranked", record.NotRanked.Label())
	assert.Equal(t, "Species", record.Species.Label())
}

func TestTaxonRankRoundTrip(t *testing.T) {
	for r := record.NotRanked; r <= record.Positio; r++ {
		txt, err := r.MarshalText()
		require.NoError(t, err)
		var res record.TaxonRank
		err = res.UnmarshalText(txt)
		require.NoError(t, err, r.Label())
		assert.Equal(t, r, res)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		input string
		res   record.Status
		err   bool
	}{
		{"Accepted", record.Accepted, false},
		{"Artificial Hybrid", record.ArtificialHybrid, false},
		{"Provisionally Accepted", record.ProvisionallyAccepted, false},
		{"Synonym", record.Synonym, false},
		{"", 0, true},
		{"accepted", 0, true},
	}

	for _, v := range tests {
		res, err := record.NewStatus(v.input)
		if v.err {
			assert.Error(t, err, v.input)
			continue
		}
		require.NoError(t, err, v.input)
		assert.Equal(t, v.res, res, v.input)
		assert.Equal(t, v.input, res.String())
	}
}

func TestClimate(t *testing.T) {
	res, err := record.NewClimate("temperate, subtropical or tropical")
	require.NoError(t, err)
	assert.Equal(t, record.TemperateSubtropicalOrTropical, res)

	res, err = record.NewClimate("wet tropical")
	require.NoError(t, err)
	assert.Equal(t, record.WetTropical, res)

	_, err = record.NewClimate("arctic")
	assert.Error(t, err)
}

func TestHybridType(t *testing.T) {
	var h record.HybridType
	require.NoError(t, h.UnmarshalText([]byte("×")))
	assert.Equal(t, record.Hybrid, h)
	require.NoError(t, h.UnmarshalText([]byte("+")))
	assert.Equal(t, record.GraftChimera, h)
	assert.Error(t, h.UnmarshalText([]byte("x")))
}

func TestFullName(t *testing.T) {
	auth := "L."
	empty := ""
	tests := []struct {
		msg string
		rec record.Record
		res string
	}{
		{
			msg: "with authors",
			rec: record.Record{TaxonName: "Bellis perennis", TaxonAuthors: &auth},
			res: "Bellis perennis L.",
		},
		{
			msg: "nil authors",
			rec: record.Record{TaxonName: "Bellis perennis"},
			res: "Bellis perennis",
		},
		{
			msg: "empty authors",
			rec: record.Record{TaxonName: "Bellis", TaxonAuthors: &empty},
			res: "Bellis",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, v.rec.FullName(), v.msg)
	}
}

func TestColumns(t *testing.T) {
	assert.Len(t, record.Columns, 31)
	assert.Equal(t, "plant_name_id", record.Columns[0])
	assert.Equal(t, "reviewed", record.Columns[len(record.Columns)-1])
}
