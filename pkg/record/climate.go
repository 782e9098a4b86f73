package record

// Climate is the habitat type of a taxon.
type Climate int

const (
	DesertAndDryShrubland Climate = iota + 1
	DesertOrDryShrubland
	MontaneTropical
	SeasonallyDryTropical
	SubalpineOrSubarctic
	Subtropical
	SubtropicalAndTropical
	SubtropicalOrTropical
	Temperate
	TemperateAndTropical
	TemperateSubtropicalOrTropical
	WetTropical
)

var climateToString = map[Climate]string{
	DesertAndDryShrubland:          "desert and dry shrubland",
	DesertOrDryShrubland:           "desert or dry shrubland",
	MontaneTropical:                "montane tropical",
	SeasonallyDryTropical:          "seasonally dry tropical",
	SubalpineOrSubarctic:           "subalpine or subarctic",
	Subtropical:                    "subtropical",
	SubtropicalAndTropical:         "subtropical and tropical",
	SubtropicalOrTropical:          "subtropical or tropical",
	Temperate:                      "temperate",
	TemperateAndTropical:           "temperate and tropical",
	TemperateSubtropicalOrTropical: "temperate, subtropical or tropical",
	WetTropical:                    "wet tropical",
}

var stringToClimate = func() map[string]Climate {
	res := make(map[string]Climate, len(climateToString))
	for k, v := range climateToString {
		res[v] = k
	}
	return res
}()

func (c Climate) String() string {
	return climateToString[c]
}

// NewClimate decodes the text of a climate_description cell.
func NewClimate(s string) (Climate, error) {
	if res, ok := stringToClimate[s]; ok {
		return res, nil
	}
	return 0, UnknownVariantError("climate_description", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Climate) UnmarshalText(text []byte) error {
	res, err := NewClimate(string(text))
	if err != nil {
		return err
	}
	*c = res
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Climate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
