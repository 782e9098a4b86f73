package record

// TaxonRank is the level of a name in the taxonomic hierarchy.
type TaxonRank int

const (
	// NotRanked replaces an empty taxon_rank cell.
	NotRanked TaxonRank = iota
	Convariety
	Form
	Genus
	Species
	Subform
	Subspecies
	Subvariety
	Variety
	NothoSubspecies
	NothoVariety
	Nothoform
	Subsubspecies
	Grex
	Mutation
	Modif
	Agamosp
	Group
	Lusus
	Sublusus
	Proles
	Subproles
	Stirps
	Monstr
	Microgene
	Micromorphe
	Microf
	Provar
	Subap
	Subspecioid
	Nid
	Psp
	Ecas
	Positio
)

var rankToString = map[TaxonRank]string{
	NotRanked:       "",
	Convariety:      "Convariety",
	Form:            "Form",
	Genus:           "Genus",
	Species:         "Species",
	Subform:         "Subform",
	Subspecies:      "Subspecies",
	Subvariety:      "Subvariety",
	Variety:         "Variety",
	NothoSubspecies: "nothosubsp.",
	NothoVariety:    "nothovar.",
	Nothoform:       "nothof.",
	Subsubspecies:   "subsubsp.",
	Grex:            "grex",
	Mutation:        "mut.",
	Modif:           "modif.",
	Agamosp:         "agamosp.",
	Group:           "group",
	Lusus:           "lusus",
	Sublusus:        "sublusus",
	Proles:          "proles",
	Subproles:       "subproles",
	Stirps:          "stirps",
	Monstr:          "monstr.",
	Microgene:       "microgène",
	Micromorphe:     "micromorphe",
	Microf:          "microf.",
	Provar:          "provar.",
	Subap:           "subap.",
	Subspecioid:     "subspecioid",
	Nid:             "nid",
	Psp:             "psp.",
	Ecas:            "ecas.",
	Positio:         "positio",
}

var stringToRank = func() map[string]TaxonRank {
	res := make(map[string]TaxonRank, len(rankToString)+1)
	for k, v := range rankToString {
		res[v] = k
	}
	// WCVP releases carry a mis-encoded "microgène".
	res["microg√®ne"] = Microgene
	return res
}()

// String returns the spelling used in the names table. NotRanked is empty.
func (r TaxonRank) String() string {
	return rankToString[r]
}

// Label is like String, but names NotRanked explicitly.
func (r TaxonRank) Label() string {
	if r == NotRanked {
		return "not ranked"
	}
	return r.String()
}

// NewTaxonRank decodes the text of a taxon_rank cell.
func NewTaxonRank(s string) (TaxonRank, error) {
	if res, ok := stringToRank[s]; ok {
		return res, nil
	}
	return NotRanked, UnknownVariantError("taxon_rank", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *TaxonRank) UnmarshalText(text []byte) error {
	res, err := NewTaxonRank(string(text))
	if err != nil {
		return err
	}
	*r = res
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r TaxonRank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
