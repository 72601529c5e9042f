package worldgen

import (
	"sort"
	"strings"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/terrain"
)

// Preset is a named planet and noise field.
type Preset struct {
	Name        string              `json:"name" toml:"name"`
	Description string              `json:"description" toml:"description"`
	Parameters  planet.Parameters   `json:"parameters" toml:"parameters"`
	Noise       terrain.NoiseConfig `json:"noise" toml:"noise"`
}

// Config returns a generation config for the preset.
func (p Preset) Config() Config {
	cfg := NewConfig(p.Parameters)
	cfg.Noise = p.Noise
	return cfg
}

// Validate checks the preset name, parameters and noise field.
func (p Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return planet.Errorf("name", "must not be empty")
	}
	if err := p.Parameters.Validate(); err != nil {
		return err
	}
	return p.Noise.Validate()
}

// DefaultPresetName is used when a request names no preset.
const DefaultPresetName = "earth"

var builtin = map[string]Preset{
	"earth": {
		Name:        "earth",
		Description: "Earth-like planet with a 24 hour day.",
		Parameters: planet.Parameters{
			Radius:            6371000,
			SolarConstant:     1361,
			OrbitalTilt:       23.44,
			RotationPeriod:    24,
			OrbitalPeriod:     365.25,
			SeaLevel:          0.5,
			AtmosphereDensity: 1.0,
			GridResolution:    5,
			TimeOfDay:         12,
		},
		Noise: terrain.DefaultNoiseConfig(),
	},
	"mars": {
		Name:        "mars",
		Description: "Cold, thin-aired desert world with shallow basins.",
		Parameters: planet.Parameters{
			Radius:            3389500,
			SolarConstant:     586,
			OrbitalTilt:       25.19,
			RotationPeriod:    24.62,
			OrbitalPeriod:     687,
			SeaLevel:          0.15,
			AtmosphereDensity: 0.006,
			GridResolution:    5,
			TimeOfDay:         12,
		},
		Noise: terrain.NoiseConfig{
			Seed:                7,
			Octaves:             6,
			Persistence:         0.55,
			Lacunarity:          2.0,
			Frequency:           1.2,
			RedistributionPower: 1.0,
			Basis:               terrain.BasisOpenSimplex,
		},
	},
	"venus": {
		Name:        "venus",
		Description: "Dense greenhouse atmosphere and a day longer than its year.",
		Parameters: planet.Parameters{
			Radius:            6051800,
			SolarConstant:     2601,
			OrbitalTilt:       177.4,
			RotationPeriod:    5832,
			OrbitalPeriod:     224.7,
			SeaLevel:          0,
			AtmosphereDensity: 10,
			GridResolution:    4,
			TimeOfDay:         12,
		},
		Noise: terrain.NoiseConfig{
			Seed:                11,
			Octaves:             5,
			Persistence:         0.45,
			Lacunarity:          2.0,
			Frequency:           1.0,
			RedistributionPower: 1.0,
			Basis:               terrain.BasisOpenSimplex,
		},
	},
	"locked": {
		Name:        "locked",
		Description: "Tidally locked planet with a permanent day side.",
		Parameters: planet.Parameters{
			Radius:            5200000,
			SolarConstant:     1100,
			OrbitalTilt:       0,
			RotationPeriod:    1500,
			OrbitalPeriod:     62.5,
			SeaLevel:          0.45,
			AtmosphereDensity: 1.2,
			GridResolution:    5,
		},
		Noise: terrain.NoiseConfig{
			Seed:                1500,
			Octaves:             6,
			Persistence:         0.5,
			Lacunarity:          2.0,
			Frequency:           1.5,
			RedistributionPower: 1.1,
			Basis:               terrain.BasisOpenSimplex,
		},
	},
	"archipelago": {
		Name:        "archipelago",
		Description: "Warm ocean world scattered with islands.",
		Parameters: planet.Parameters{
			Radius:            6371000,
			SolarConstant:     1400,
			OrbitalTilt:       15,
			RotationPeriod:    20,
			OrbitalPeriod:     300,
			SeaLevel:          0.54,
			AtmosphereDensity: 1.1,
			GridResolution:    5,
			TimeOfDay:         12,
		},
		Noise: terrain.NoiseConfig{
			Seed:                2024,
			Octaves:             8,
			Persistence:         0.5,
			Lacunarity:          2.2,
			Frequency:           3.0,
			RedistributionPower: 1.0,
			Basis:               terrain.BasisPerlin,
		},
	},
}

// Presets returns the built-in presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(builtin))
	for _, p := range builtin {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupPreset returns the built-in preset with the given name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := builtin[strings.ToLower(name)]
	return p, ok
}
