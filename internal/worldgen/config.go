// Package worldgen runs the generation pipeline: it builds the grid,
// synthesizes terrain, computes climate and biomes, and derives wind from
// the finished temperature field.
package worldgen

import (
	"log/slog"
	"runtime"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/terrain"
)

// Config holds everything one generation run needs. Build it with
// NewConfig and override fields; Generate does not fill in zero values
// other than Log.
type Config struct {
	Parameters planet.Parameters
	// Noise configures the synthesizer. It is ignored when HeightMap is set.
	Noise terrain.NoiseConfig
	// HeightMap replaces noise synthesis with nearest-sample lookups.
	HeightMap *terrain.HeightMap
	// AnnualAverage averages temperature and precipitation over the orbit
	// instead of taking them at Parameters.DayOfYear.
	AnnualAverage bool
	// Workers is the number of goroutines used within each pass.
	Workers int
	// Log receives pass timings. slog.Default() is used when nil.
	Log *slog.Logger
}

// NewConfig returns a Config for p using the default noise field and one
// worker per CPU.
func NewConfig(p planet.Parameters) Config {
	return Config{
		Parameters: p,
		Noise:      terrain.DefaultNoiseConfig(),
		Workers:    runtime.NumCPU(),
		Log:        slog.Default(),
	}
}

// Validate checks the configuration without doing any work.
func (c Config) Validate() error {
	if err := c.Parameters.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return planet.Errorf("workers", "must be at least 1, got %d", c.Workers)
	}
	if c.HeightMap != nil {
		return c.HeightMap.Validate()
	}
	return c.Noise.Validate()
}

func (c Config) source() (terrain.Source, error) {
	if c.HeightMap != nil {
		return terrain.NewHeightMapSource(c.HeightMap)
	}
	return terrain.NewSynthesizer(c.Noise)
}
