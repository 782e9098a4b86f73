// Package iotesting builds WCVP archives in memory for tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/xuri/excelize/v2"
)

const (
	// ReadmeEntry and NamesEntry repeat the entry names of a real release.
	ReadmeEntry = "README_WCVP.xlsx"
	NamesEntry  = "wcvp_names.csv"

	// ReadmeSheet is the worksheet with release metadata.
	ReadmeSheet = "README"
)

// Header is the first line of the names table.
var Header = []string{
	"plant_name_id", "ipni_id", "taxon_rank", "taxon_status", "family",
	"genus_hybrid", "genus", "species_hybrid", "species", "infraspecific_rank",
	"infraspecies", "parenthetical_author", "primary_author",
	"publication_author", "place_of_publication", "volume_and_page",
	"first_published", "nomenclatural_remarks", "geographic_area",
	"lifeform_description", "climate_description", "taxon_name",
	"taxon_authors", "accepted_plant_name_id", "basionym_plant_name_id",
	"replaced_synonym_author", "homotypic_synonym", "parent_plant_name_id",
	"powo_id", "hybrid_formula", "reviewed",
}

// Fixture describes the content of a generated archive.
type Fixture struct {
	// Readme holds rows of README cells. Nil means DefaultReadme.
	Readme [][]string

	// Sheet is the name of the metadata worksheet. Empty means README.
	Sheet string

	// Names is the raw content of the names table. Empty means
	// DefaultNames.
	Names string

	// Omit lists entries that are left out of the archive.
	Omit []string
}

// DefaultReadme declares release 15 with three rows.
func DefaultReadme() [][]string {
	return [][]string{
		{"World Checklist of Vascular Plants"},
		{"", "Version 15"},
		{"Extracted: 04/03/2021"},
		{"Table: 3 rows and 31 columns", "Table: 9 rows and 1 column"},
	}
}

// Row returns a names table line with values set by column name.
func Row(values map[string]string) string {
	res := make([]string, len(Header))
	for i, v := range Header {
		res[i] = values[v]
	}
	return strings.Join(res, "|")
}

// NamesTable joins the header and rows into a names table.
func NamesTable(rows ...string) string {
	lines := append([]string{strings.Join(Header, "|")}, rows...)
	return strings.Join(lines, "\n") + "\n"
}

// DefaultNames has a genus, an accepted species and its synonym.
func DefaultNames() string {
	return NamesTable(
		Row(map[string]string{
			"plant_name_id": "100", "ipni_id": "1-1", "taxon_rank": "Genus",
			"taxon_status": "Accepted", "family": "Asteraceae", "genus": "Bellis",
			"taxon_name": "Bellis", "taxon_authors": "L.",
			"accepted_plant_name_id": "100", "powo_id": "urn:1-1",
			"geographic_area": "Europe", "reviewed": "Y",
		}),
		Row(map[string]string{
			"plant_name_id": "200", "ipni_id": "2-1", "taxon_rank": "Species",
			"taxon_status": "Accepted", "family": "Asteraceae", "genus": "Bellis",
			"species": "perennis", "primary_author": "L.",
			"geographic_area": "Europe", "lifeform_description": "hemicryptophyte",
			"climate_description": "temperate", "taxon_name": "Bellis perennis",
			"taxon_authors": "L.", "accepted_plant_name_id": "200",
			"parent_plant_name_id": "100", "powo_id": "urn:2-1", "reviewed": "Y",
		}),
		Row(map[string]string{
			"plant_name_id": "300", "taxon_rank": "Species",
			"taxon_status": "Synonym", "family": "Asteraceae", "genus": "Bellis",
			"species": "hortensis", "taxon_name": "Bellis hortensis",
			"taxon_authors": "Mill.", "accepted_plant_name_id": "200",
			"powo_id": "urn:3-1", "reviewed": "N",
		}),
	)
}

// XLSX creates a workbook with one worksheet filled with rows.
func XLSX(t *testing.T, sheet string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	for i, row := range rows {
		for j, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("Failed to get cell name: %v", err)
			}
			if err = f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("Failed to set cell %s: %v", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

// Archive creates zip bytes described by the fixture.
func Archive(t *testing.T, fx Fixture) []byte {
	t.Helper()

	readme := fx.Readme
	if readme == nil {
		readme = DefaultReadme()
	}
	sheet := fx.Sheet
	if sheet == "" {
		sheet = ReadmeSheet
	}
	names := fx.Names
	if names == "" {
		names = DefaultNames()
	}

	entries := []struct {
		name string
		data []byte
	}{
		{ReadmeEntry, XLSX(t, sheet, readme)},
		{NamesEntry, []byte(names)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		if slices.Contains(fx.Omit, e.name) {
			continue
		}
		w, err := zw.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create entry %s: %v", e.name, err)
		}
		if _, err = w.Write(e.data); err != nil {
			t.Fatalf("Failed to write entry %s: %v", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close archive: %v", err)
	}
	return buf.Bytes()
}

// WriteArchive saves archive bytes to a temporary directory and returns
// the path.
func WriteArchive(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wcvp.zip")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}
	return path
}
