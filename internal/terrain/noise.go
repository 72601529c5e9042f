// Package terrain produces the elevation field of a planet, either from
// layered gradient noise sampled on the unit sphere or from an externally
// supplied raster.
package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/stats"
)

// Source yields a normalized elevation in [0, 1] for a coordinate in degrees.
type Source interface {
	ElevationAt(lat, lng float64) float64
}

// Basis selects the gradient noise implementation.
type Basis string

const (
	BasisOpenSimplex Basis = "opensimplex"
	BasisPerlin      Basis = "perlin"
)

// NoiseConfig controls the octave noise field.
type NoiseConfig struct {
	Seed                int64   `json:"seed" toml:"seed"`
	Octaves             int     `json:"octaves" toml:"octaves"`
	Persistence         float64 `json:"persistence" toml:"persistence"`                   // amplitude multiplier per octave
	Lacunarity          float64 `json:"lacunarity" toml:"lacunarity"`                     // frequency multiplier per octave
	Frequency           float64 `json:"frequency" toml:"frequency"`                       // base frequency on the unit sphere
	RedistributionPower float64 `json:"redistribution_power" toml:"redistribution_power"` // >1 widens lowlands
	Basis               Basis   `json:"basis" toml:"basis"`
}

// MaxOctaves bounds the work done per sample.
const MaxOctaves = 16

// DefaultNoiseConfig returns the configuration used by the earth preset.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		Seed:                42,
		Octaves:             6,
		Persistence:         0.5,
		Lacunarity:          2.0,
		Frequency:           1.5,
		RedistributionPower: 1.2,
		Basis:               BasisOpenSimplex,
	}
}

// Validate reports the first unusable field as a *planet.ConfigError.
func (c NoiseConfig) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"noise.persistence", c.Persistence},
		{"noise.lacunarity", c.Lacunarity},
		{"noise.frequency", c.Frequency},
		{"noise.redistribution_power", c.RedistributionPower},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return planet.Errorf(f.name, "must be a finite number")
		}
	}

	switch {
	case c.Octaves < 1 || c.Octaves > MaxOctaves:
		return planet.Errorf("noise.octaves", "must be within [1, %d], got %d", MaxOctaves, c.Octaves)
	case c.Persistence <= 0 || c.Persistence > 1:
		return planet.Errorf("noise.persistence", "must be within (0, 1], got %g", c.Persistence)
	case c.Lacunarity < 1:
		return planet.Errorf("noise.lacunarity", "must be at least 1, got %g", c.Lacunarity)
	case c.Frequency <= 0:
		return planet.Errorf("noise.frequency", "must be positive, got %g", c.Frequency)
	case c.RedistributionPower <= 0:
		return planet.Errorf("noise.redistribution_power", "must be positive, got %g", c.RedistributionPower)
	case c.Basis != BasisOpenSimplex && c.Basis != BasisPerlin:
		return planet.Errorf("noise.basis", "unknown basis %q", c.Basis)
	}
	return nil
}

// field3 is a 3D gradient noise field returning values in roughly [-1, 1].
type field3 func(x, y, z float64) float64

// octaveOffset shifts each octave so layers do not share a lattice origin.
var octaveOffset = mgl64.Vec3{17.31, -5.77, 11.13}

// Synthesizer samples layered noise on the unit sphere. It is read-only after
// construction and safe for concurrent use.
type Synthesizer struct {
	cfg   NoiseConfig
	field field3
}

// NewSynthesizer creates a synthesizer for cfg.
func NewSynthesizer(cfg NoiseConfig) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var f field3
	switch cfg.Basis {
	case BasisPerlin:
		p := perlin.NewPerlin(2, 2, 1, cfg.Seed)
		f = p.Noise3D
	default:
		f = opensimplex.New(cfg.Seed).Eval3
	}
	return &Synthesizer{cfg: cfg, field: f}, nil
}

// Config returns the noise configuration the synthesizer was built with.
func (s *Synthesizer) Config() NoiseConfig {
	return s.cfg
}

// ElevationAt returns the elevation in [0, 1] at the given coordinate.
// The same (config, lat, lng) always yields the same bits.
func (s *Synthesizer) ElevationAt(lat, lng float64) float64 {
	p := UnitVector(lat, lng)

	var total, amplitudeSum float64
	amplitude := 1.0
	frequency := s.cfg.Frequency
	for octave := 0; octave < s.cfg.Octaves; octave++ {
		q := p.Mul(frequency).Add(octaveOffset.Mul(float64(octave)))
		total += s.field(q.X(), q.Y(), q.Z()) * amplitude
		amplitudeSum += amplitude
		amplitude *= s.cfg.Persistence
		frequency *= s.cfg.Lacunarity
	}

	v := stats.Clamp((total/amplitudeSum+1)/2, 0, 1)
	return math.Pow(v, s.cfg.RedistributionPower)
}

// UnitVector maps a coordinate in degrees onto the unit sphere. Sampling noise
// here avoids the seams a flat lat/lng field has at ±180° and at the poles.
func UnitVector(lat, lng float64) mgl64.Vec3 {
	phi := mgl64.DegToRad(lat)
	lambda := mgl64.DegToRad(lng)
	return mgl64.Vec3{
		math.Cos(phi) * math.Cos(lambda),
		math.Cos(phi) * math.Sin(lambda),
		math.Sin(phi),
	}
}
