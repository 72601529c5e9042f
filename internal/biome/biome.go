// Package biome classifies cells into one of twelve biomes from their
// temperature, precipitation and altitude.
package biome

import (
	"fmt"
	"strings"
)

// Biome is a biome label. The string value is the wire form.
type Biome string

// Biome labels.
const (
	Ocean             Biome = "ocean"
	Alpine            Biome = "alpine"
	Ice               Biome = "ice"
	Tundra            Biome = "tundra"
	Taiga             Biome = "taiga"
	Grassland         Biome = "grassland"
	Forest            Biome = "forest"
	SeasonalForest    Biome = "seasonal_forest"
	Desert            Biome = "desert"
	SubtropicalDesert Biome = "subtropical_desert"
	Savanna           Biome = "savanna"
	Rainforest        Biome = "rainforest"
)

// AlpineAltitude is the altitude in meters above sea level beyond which
// land is alpine regardless of climate.
const AlpineAltitude = 4000.0

// Classify returns the biome for a cell. The first matching rule wins:
//
//	altitude < 0           ocean
//	altitude > 4000        alpine
//	T < -15                ice
//	T < 0                  tundra
//	T < 10                 tundra (P < 400) | taiga
//	T < 20                 grassland (P < 500) | forest
//	T < 25                 desert (P < 250) | grassland (P < 750) | forest (P < 1500) | seasonal forest
//	otherwise              desert (P < 150) | subtropical desert (P < 400) | savanna (P < 1000)
//	                       | seasonal forest (P < 2000) | rainforest
//
// T is in °C and P in mm/year. Classify is total: NaN inputs fail every
// comparison and fall through to a label like any other value.
func Classify(temperature, precipitation, altitude float64) Biome {
	switch {
	case altitude < 0:
		return Ocean
	case altitude > AlpineAltitude:
		return Alpine
	case temperature < -15:
		return Ice
	case temperature < 0:
		return Tundra
	case temperature < 10:
		if precipitation < 400 {
			return Tundra
		}
		return Taiga
	case temperature < 20:
		if precipitation < 500 {
			return Grassland
		}
		return Forest
	case temperature < 25:
		switch {
		case precipitation < 250:
			return Desert
		case precipitation < 750:
			return Grassland
		case precipitation < 1500:
			return Forest
		default:
			return SeasonalForest
		}
	}

	// NaN temperature lands here too; it is treated as hot.
	switch {
	case precipitation < 150:
		return Desert
	case precipitation < 400:
		return SubtropicalDesert
	case precipitation < 1000:
		return Savanna
	case precipitation < 2000:
		return SeasonalForest
	default:
		return Rainforest
	}
}

type info struct {
	color       string
	description string
}

var table = map[Biome]info{
	Ocean:             {"#1f4e79", "Open water below sea level."},
	Alpine:            {"#a8a8a8", "Bare rock and permanent snow above the tree line."},
	Ice:               {"#f0f8ff", "Ice sheets and polar desert."},
	Tundra:            {"#b4c8a8", "Treeless cold plains with permafrost."},
	Taiga:             {"#3b6e4f", "Boreal coniferous forest."},
	Grassland:         {"#9cbd5a", "Temperate steppe and prairie."},
	Forest:            {"#3f8f3f", "Temperate deciduous forest."},
	SeasonalForest:    {"#5c9e2f", "Warm forest with a marked dry season."},
	Desert:            {"#e8d79a", "Arid land with sparse vegetation."},
	SubtropicalDesert: {"#d9b77a", "Hot scrubland on the desert margins."},
	Savanna:           {"#c9b93f", "Tropical grassland with scattered trees."},
	Rainforest:        {"#1e6b2e", "Tropical forest with rain all year."},
}

var all = []Biome{
	Ocean, Alpine, Ice, Tundra, Taiga, Grassland, Forest,
	SeasonalForest, Desert, SubtropicalDesert, Savanna, Rainforest,
}

// All returns every biome in table order.
func All() []Biome {
	out := make([]Biome, len(all))
	copy(out, all)
	return out
}

// Color returns the display color of b as a hex string, or "" for an
// unknown label.
func Color(b Biome) string {
	return table[b].color
}

// Description returns a one-sentence description of b.
func Description(b Biome) string {
	return table[b].description
}

// Valid reports whether b is one of the twelve labels.
func (b Biome) Valid() bool {
	_, ok := table[b]
	return ok
}

func (b Biome) String() string {
	return string(b)
}

// Parse looks up a label case-insensitively. Spaces and dashes are
// accepted in place of underscores.
func Parse(name string) (Biome, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "_", "-", "_").Replace(n)
	b := Biome(n)
	if !b.Valid() {
		return "", fmt.Errorf("unknown biome %q", name)
	}
	return b, nil
}
