package schema

import (
	"time"

	"github.com/gnames/gnuuid"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/gnames/wcvp/pkg/record"
	"github.com/google/uuid"
)

// NewRelease describes a loaded dataset as a release row.
func NewRelease(d *dataset.Dataset, exportedAt time.Time) Release {
	meta := d.Metadata()
	dups := d.Duplicates()
	return Release{
		Version:          int(meta.Version.Number()),
		Extracted:        meta.Extracted,
		DeclaredRows:     int(meta.Rows),
		Records:          d.Len(),
		DuplicateIDs:     dups.IDs,
		DuplicatePowoIDs: dups.PowoIDs,
		ExportedAt:       exportedAt,
	}
}

// NewName converts a record to a row. Canonical is the simple canonical
// form of the taxon name, empty when the name could not be parsed.
//
// NameStringID is UUID v5 of the name with authors, CanonicalID is UUID v5
// of the canonical form, so both match identifiers of other GlobalNames
// indices.
func NewName(r record.Record, canonical string) Name {
	res := Name{
		PlantNameID:           r.ID,
		IpniID:                r.IpniID,
		TaxonStatus:           r.TaxonStatus.String(),
		Family:                r.Family,
		Genus:                 r.Genus,
		Species:               r.Species,
		InfraspecificRank:     r.InfraspecificRank,
		Infraspecies:          r.Infraspecies,
		ParentheticalAuthor:   r.ParentheticalAuthor,
		PrimaryAuthor:         r.PrimaryAuthor,
		PublicationAuthor:     r.PublicationAuthor,
		PlaceOfPublication:    r.PlaceOfPublication,
		VolumeAndPage:         r.VolumeAndPage,
		FirstPublished:        r.FirstPublished,
		NomenclaturalRemarks:  r.NomenclaturalRemarks,
		GeographicArea:        r.GeographicArea,
		LifeformDescription:   r.LifeformDescription,
		TaxonName:             r.TaxonName,
		TaxonAuthors:          r.TaxonAuthors,
		AcceptedPlantNameID:   r.AcceptedPlantNameID,
		BasionymPlantNameID:   r.BasionymPlantNameID,
		ReplacedSynonymAuthor: r.ReplacedSynonymAuthor,
		HomotypicSynonym:      r.HomotypicSynonym,
		ParentPlantNameID:     r.ParentPlantNameID,
		PowoID:                r.PowoID,
		HybridFormula:         r.HybridFormula,
		Reviewed:              r.Reviewed,
		NameStringID:          gnuuid.New(r.FullName()),
	}

	if r.TaxonRank != record.NotRanked {
		res.TaxonRank = text(r.TaxonRank.String())
	}
	if r.GenusHybrid != nil {
		res.GenusHybrid = text(r.GenusHybrid.String())
	}
	if r.SpeciesHybrid != nil {
		res.SpeciesHybrid = text(r.SpeciesHybrid.String())
	}
	if r.ClimateDescription != nil {
		res.ClimateDescription = text(r.ClimateDescription.String())
	}
	if canonical != "" {
		res.Canonical = text(canonical)
		res.CanonicalID = uuid.NullUUID{UUID: gnuuid.New(canonical), Valid: true}
	}
	return res
}

func text(s string) *string {
	return &s
}
