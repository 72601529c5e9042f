package worldgen

import (
	"github.com/jengzang/worldsynth/internal/grid"
	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/terrain"
)

// Terrain sources.
const (
	SourceNoise     = "noise"
	SourceHeightMap = "heightmap"
)

// World is the result of one generation run. It is read-only and safe for
// concurrent use.
type World struct {
	params      planet.Parameters
	noise       terrain.NoiseConfig
	source      string
	annual      bool
	grid        *grid.Grid
	cells       []CellRecord
	fingerprint uint64
}

func newWorld(cfg Config, g *grid.Grid, cells []CellRecord) *World {
	w := &World{
		params: cfg.Parameters,
		noise:  cfg.Noise,
		source: SourceNoise,
		annual: cfg.AnnualAverage,
		grid:   g,
		cells:  cells,
	}
	if cfg.HeightMap != nil {
		w.source = SourceHeightMap
		w.noise = terrain.NoiseConfig{}
	}
	w.fingerprint = fingerprint(cells)
	return w
}

// Parameters returns the planet the world was generated for.
func (w *World) Parameters() planet.Parameters {
	return w.params
}

// Noise returns the noise configuration, or false when the terrain came from
// a height map.
func (w *World) Noise() (terrain.NoiseConfig, bool) {
	return w.noise, w.source == SourceNoise
}

// Source reports where elevations came from: SourceNoise or SourceHeightMap.
func (w *World) Source() string {
	return w.source
}

// AnnualAverage reports whether climate was averaged over the orbit.
func (w *World) AnnualAverage() bool {
	return w.annual
}

// Grid returns the grid the world was built on.
func (w *World) Grid() *grid.Grid {
	return w.grid
}

// Len returns the number of cells.
func (w *World) Len() int {
	return len(w.cells)
}

// Cells returns every record in grid order. The slice must not be modified.
func (w *World) Cells() []CellRecord {
	return w.cells
}

// CellAt returns the record of the cell containing (lat, lng).
func (w *World) CellAt(lat, lng float64) (CellRecord, bool) {
	return w.CellByID(w.grid.Locate(lat, lng))
}

// CellByID returns the record with the given id. The bool is false when the
// id does not belong to this world's grid.
func (w *World) CellByID(id grid.CellID) (CellRecord, bool) {
	i, ok := w.grid.Index(id)
	if !ok {
		return CellRecord{}, false
	}
	return w.cells[i], true
}

// Fingerprint is a hash over every record. Two runs with the same
// configuration produce the same fingerprint.
func (w *World) Fingerprint() uint64 {
	return w.fingerprint
}
