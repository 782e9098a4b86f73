package record

// Status is the nomenclatural status and taxonomic opinion about a name.
type Status int

const (
	Accepted Status = iota + 1
	ArtificialHybrid
	Illegitimate
	Invalid
	LocalBiotype
	Misapplied
	Orthographic
	Synonym
	Unplaced
	ProvisionallyAccepted
)

var statusToString = map[Status]string{
	Accepted:              "Accepted",
	ArtificialHybrid:      "Artificial Hybrid",
	Illegitimate:          "Illegitimate",
	Invalid:               "Invalid",
	LocalBiotype:          "Local Biotype",
	Misapplied:            "Misapplied",
	Orthographic:          "Orthographic",
	Synonym:               "Synonym",
	Unplaced:              "Unplaced",
	ProvisionallyAccepted: "Provisionally Accepted",
}

var stringToStatus = func() map[string]Status {
	res := make(map[string]Status, len(statusToString))
	for k, v := range statusToString {
		res[v] = k
	}
	return res
}()

func (s Status) String() string {
	return statusToString[s]
}

// NewStatus decodes the text of a taxon_status cell.
func NewStatus(s string) (Status, error) {
	if res, ok := stringToStatus[s]; ok {
		return res, nil
	}
	return 0, UnknownVariantError("taxon_status", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	res, err := NewStatus(string(text))
	if err != nil {
		return err
	}
	*s = res
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
