package record

// HybridType marks a genus or species as a graft-chimaera or a hybrid.
type HybridType int

const (
	// GraftChimera is written as "+".
	GraftChimera HybridType = iota + 1
	// Hybrid is written as "×".
	Hybrid
)

func (h HybridType) String() string {
	switch h {
	case GraftChimera:
		return "+"
	case Hybrid:
		return "×"
	default:
		return ""
	}
}

// NewHybridType decodes the text of a genus_hybrid or species_hybrid cell.
func NewHybridType(s string) (HybridType, error) {
	switch s {
	case "+":
		return GraftChimera, nil
	case "×":
		return Hybrid, nil
	default:
		return 0, UnknownVariantError("hybrid", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HybridType) UnmarshalText(text []byte) error {
	res, err := NewHybridType(string(text))
	if err != nil {
		return err
	}
	*h = res
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (h HybridType) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// ParseReviewed decodes the reviewed flag: "Y" is true, "N" or an empty
// cell is false.
func ParseReviewed(s string) (bool, error) {
	switch s {
	case "Y":
		return true, nil
	case "", "N":
		return false, nil
	default:
		return false, UnknownVariantError("reviewed", s)
	}
}
