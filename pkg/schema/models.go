// Package schema describes the database tables written by WCVP export.
//
// Struct tags serve two writers: `gorm` tags drive AutoMigrate for
// PostgreSQL, `db` and `ddl` tags generate SQLite DDL and the column lists
// used by bulk inserts.
package schema

import (
	"time"

	"github.com/google/uuid"
)

// DDLGenerator defines how Go models generate SQLite DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Release stores metadata of an exported WCVP release.
type Release struct {
	// Version is the WCVP release number.
	Version int `db:"version" ddl:"INTEGER PRIMARY KEY" gorm:"primaryKey;autoIncrement:false"`

	// Extracted is the date the release was extracted from the WCVP
	// database.
	Extracted time.Time `db:"extracted" ddl:"DATE NOT NULL" gorm:"type:date;not null"`

	// DeclaredRows is the size of the names table according to README.
	DeclaredRows int `db:"declared_rows" ddl:"INTEGER NOT NULL" gorm:"not null"`

	// Records is the number of exported names.
	Records int `db:"records" ddl:"INTEGER NOT NULL" gorm:"not null"`

	// DuplicateIDs counts overwritten plant_name_id values.
	DuplicateIDs int `db:"duplicate_ids" ddl:"INTEGER NOT NULL DEFAULT 0" gorm:"column:duplicate_ids;not null;default:0"`

	// DuplicatePowoIDs counts redirected powo_id values.
	DuplicatePowoIDs int `db:"duplicate_powo_ids" ddl:"INTEGER NOT NULL DEFAULT 0" gorm:"column:duplicate_powo_ids;not null;default:0"`

	// ExportedAt is the time of export.
	ExportedAt time.Time `db:"exported_at" ddl:"TIMESTAMP NOT NULL" gorm:"not null"`
}

// Name is one row of the WCVP names table with identifiers for
// cross-referencing with other name indices.
type Name struct {
	PlantNameID           int           `db:"plant_name_id" ddl:"INTEGER PRIMARY KEY" gorm:"column:plant_name_id;primaryKey;autoIncrement:false"`
	IpniID                *string       `db:"ipni_id" ddl:"TEXT" gorm:"column:ipni_id;type:varchar(50)"`
	TaxonRank             *string       `db:"taxon_rank" ddl:"TEXT" gorm:"type:varchar(50)"`
	TaxonStatus           string        `db:"taxon_status" ddl:"TEXT NOT NULL" gorm:"type:varchar(50);not null"`
	Family                string        `db:"family" ddl:"TEXT NOT NULL" gorm:"type:varchar(100);not null;index"`
	GenusHybrid           *string       `db:"genus_hybrid" ddl:"TEXT" gorm:"type:varchar(5)"`
	Genus                 string        `db:"genus" ddl:"TEXT NOT NULL" gorm:"type:varchar(100);not null"`
	SpeciesHybrid         *string       `db:"species_hybrid" ddl:"TEXT" gorm:"type:varchar(5)"`
	Species               *string       `db:"species" ddl:"TEXT" gorm:"type:varchar(100)"`
	InfraspecificRank     *string       `db:"infraspecific_rank" ddl:"TEXT" gorm:"type:varchar(50)"`
	Infraspecies          *string       `db:"infraspecies" ddl:"TEXT" gorm:"type:varchar(100)"`
	ParentheticalAuthor   *string       `db:"parenthetical_author" ddl:"TEXT" gorm:"type:text"`
	PrimaryAuthor         *string       `db:"primary_author" ddl:"TEXT" gorm:"type:text"`
	PublicationAuthor     *string       `db:"publication_author" ddl:"TEXT" gorm:"type:text"`
	PlaceOfPublication    *string       `db:"place_of_publication" ddl:"TEXT" gorm:"type:text"`
	VolumeAndPage         *string       `db:"volume_and_page" ddl:"TEXT" gorm:"type:text"`
	FirstPublished        *string       `db:"first_published" ddl:"TEXT" gorm:"type:varchar(50)"`
	NomenclaturalRemarks  *string       `db:"nomenclatural_remarks" ddl:"TEXT" gorm:"type:text"`
	GeographicArea        *string       `db:"geographic_area" ddl:"TEXT" gorm:"type:text"`
	LifeformDescription   *string       `db:"lifeform_description" ddl:"TEXT" gorm:"type:text"`
	ClimateDescription    *string       `db:"climate_description" ddl:"TEXT" gorm:"type:varchar(50)"`
	TaxonName             string        `db:"taxon_name" ddl:"TEXT NOT NULL" gorm:"type:varchar(500);not null;index"`
	TaxonAuthors          *string       `db:"taxon_authors" ddl:"TEXT" gorm:"type:text"`
	AcceptedPlantNameID   *string       `db:"accepted_plant_name_id" ddl:"TEXT" gorm:"column:accepted_plant_name_id;type:varchar(50);index"`
	BasionymPlantNameID   *string       `db:"basionym_plant_name_id" ddl:"TEXT" gorm:"column:basionym_plant_name_id;type:varchar(50)"`
	ReplacedSynonymAuthor *string       `db:"replaced_synonym_author" ddl:"TEXT" gorm:"type:text"`
	HomotypicSynonym      *string       `db:"homotypic_synonym" ddl:"TEXT" gorm:"type:varchar(10)"`
	ParentPlantNameID     *string       `db:"parent_plant_name_id" ddl:"TEXT" gorm:"column:parent_plant_name_id;type:varchar(50)"`
	PowoID                string        `db:"powo_id" ddl:"TEXT NOT NULL" gorm:"column:powo_id;type:varchar(50);not null;index"`
	HybridFormula         *string       `db:"hybrid_formula" ddl:"TEXT" gorm:"type:text"`
	Reviewed              bool          `db:"reviewed" ddl:"BOOLEAN NOT NULL" gorm:"not null"`
	NameStringID          uuid.UUID     `db:"name_string_id" ddl:"TEXT NOT NULL" gorm:"column:name_string_id;type:uuid;not null;index"`
	Canonical             *string       `db:"canonical" ddl:"TEXT" gorm:"type:varchar(255)"`
	CanonicalID           uuid.NullUUID `db:"canonical_id" ddl:"TEXT" gorm:"column:canonical_id;type:uuid;index"`
}
