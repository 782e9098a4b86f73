// Package record describes one row of the WCVP names table together with
// the closed vocabularies used by its enumerated columns.
//
// The struct tags name the exact header of the pipe-delimited table. Optional
// columns are pointers and stay nil when a cell is empty.
package record

// Record is a taxonomic name entry of the World Checklist of Vascular Plants.
// Records are never modified after they are parsed.
type Record struct {
	// ID is the WCVP identifier of the name.
	ID int `csv:"plant_name_id" json:"plantNameId"`

	// IpniID is the International Plant Name Index identifier. Empty when the
	// name is not matched with IPNI or is missing from it.
	IpniID *string `csv:"ipni_id,omitempty" json:"ipniId,omitempty"`

	// TaxonRank is the level in the taxonomic hierarchy. Unranked
	// infraspecific names get NotRanked.
	TaxonRank TaxonRank `csv:"taxon_rank" json:"taxonRank"`

	// TaxonStatus is the nomenclatural status and taxonomic opinion.
	TaxonStatus Status `csv:"taxon_status" json:"taxonStatus"`

	// Family is the family of the taxon, the highest rank given in WCVP.
	Family string `csv:"family" json:"family"`

	// GenusHybrid marks hybrid status at genus level.
	GenusHybrid *HybridType `csv:"genus_hybrid,omitempty" json:"genusHybrid,omitempty"`

	// Genus is the genus of the name.
	Genus string `csv:"genus" json:"genus"`

	// SpeciesHybrid marks hybrid status at species level.
	SpeciesHybrid *HybridType `csv:"species_hybrid,omitempty" json:"speciesHybrid,omitempty"`

	// Species is the specific epithet. Empty for names at genus rank.
	Species *string `csv:"species,omitempty" json:"species,omitempty"`

	// InfraspecificRank is the rank of the infraspecific epithet as it is
	// written in the name.
	InfraspecificRank *string `csv:"infraspecific_rank,omitempty" json:"infraspecificRank,omitempty"`

	// Infraspecies is the infraspecific epithet.
	Infraspecies *string `csv:"infraspecies,omitempty" json:"infraspecies,omitempty"`

	// ParentheticalAuthor is the author of the basionym.
	ParentheticalAuthor *string `csv:"parenthetical_author,omitempty" json:"parentheticalAuthor,omitempty"`

	// PrimaryAuthor published the scientific name. Empty for autonyms.
	PrimaryAuthor *string `csv:"primary_author,omitempty" json:"primaryAuthor,omitempty"`

	// PublicationAuthor is the author of the book where the name was first
	// published, when different from the primary author.
	PublicationAuthor *string `csv:"publication_author,omitempty" json:"publicationAuthor,omitempty"`

	// PlaceOfPublication is the abbreviated journal or book title.
	PlaceOfPublication *string `csv:"place_of_publication,omitempty" json:"placeOfPublication,omitempty"`

	// VolumeAndPage follows the "5(6): 36" convention.
	VolumeAndPage *string `csv:"volume_and_page,omitempty" json:"volumeAndPage,omitempty"`

	// FirstPublished is the year of publication in parentheses.
	FirstPublished *string `csv:"first_published,omitempty" json:"firstPublished,omitempty"`

	// NomenclaturalRemarks starts with ", " for easy concatenation.
	NomenclaturalRemarks *string `csv:"nomenclatural_remarks,omitempty" json:"nomenclaturalRemarks,omitempty"`

	// GeographicArea is a narrative statement of the distribution.
	GeographicArea *string `csv:"geographic_area,omitempty" json:"geographicArea,omitempty"`

	// LifeformDescription uses a modified Raunkiær system.
	LifeformDescription *string `csv:"lifeform_description,omitempty" json:"lifeformDescription,omitempty"`

	// ClimateDescription is the habitat type derived from published
	// habitat information.
	ClimateDescription *Climate `csv:"climate_description,omitempty" json:"climateDescription,omitempty"`

	// TaxonName is a binomial or trinomial without authorship.
	TaxonName string `csv:"taxon_name" json:"taxonName"`

	// TaxonAuthors concatenates parenthetical and primary authors.
	TaxonAuthors *string `csv:"taxon_authors,omitempty" json:"taxonAuthors,omitempty"`

	// AcceptedPlantNameID points to the accepted name of the taxon.
	AcceptedPlantNameID *string `csv:"accepted_plant_name_id,omitempty" json:"acceptedPlantNameId,omitempty"`

	// BasionymPlantNameID points to the original name TaxonName derives from.
	BasionymPlantNameID *string `csv:"basionym_plant_name_id,omitempty" json:"basionymPlantNameId,omitempty"`

	// ReplacedSynonymAuthor is set for replacement names only.
	ReplacedSynonymAuthor *string `csv:"replaced_synonym_author,omitempty" json:"replacedSynonymAuthor,omitempty"`

	// HomotypicSynonym is "TRUE" for homotypic synonyms.
	HomotypicSynonym *string `csv:"homotypic_synonym,omitempty" json:"homotypicSynonym,omitempty"`

	// ParentPlantNameID points to the parent genus or species of accepted
	// names.
	ParentPlantNameID *string `csv:"parent_plant_name_id,omitempty" json:"parentPlantNameId,omitempty"`

	// PowoID is the Plants of the World Online identifier.
	PowoID string `csv:"powo_id" json:"powoId"`

	// HybridFormula lists the parents of a hybrid.
	HybridFormula *string `csv:"hybrid_formula,omitempty" json:"hybridFormula,omitempty"`

	// Reviewed is true when the family has been peer reviewed.
	Reviewed bool `csv:"reviewed" json:"reviewed"`
}

// Columns lists the header of the names table in the order of the WCVP
// distribution.
var Columns = []string{
	"plant_name_id",
	"ipni_id",
	"taxon_rank",
	"taxon_status",
	"family",
	"genus_hybrid",
	"genus",
	"species_hybrid",
	"species",
	"infraspecific_rank",
	"infraspecies",
	"parenthetical_author",
	"primary_author",
	"publication_author",
	"place_of_publication",
	"volume_and_page",
	"first_published",
	"nomenclatural_remarks",
	"geographic_area",
	"lifeform_description",
	"climate_description",
	"taxon_name",
	"taxon_authors",
	"accepted_plant_name_id",
	"basionym_plant_name_id",
	"replaced_synonym_author",
	"homotypic_synonym",
	"parent_plant_name_id",
	"powo_id",
	"hybrid_formula",
	"reviewed",
}

// FullName returns the taxon name with its authorship, if any.
func (r Record) FullName() string {
	if r.TaxonAuthors == nil || *r.TaxonAuthors == "" {
		return r.TaxonName
	}
	return r.TaxonName + " " + *r.TaxonAuthors
}

// Value dereferences an optional field, returning an empty string for nil.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
