package worldgen

import (
	"github.com/jengzang/worldsynth/internal/biome"
	"github.com/jengzang/worldsynth/internal/climate"
	"github.com/jengzang/worldsynth/internal/grid"
)

// TerrainSample is the terrain of one cell.
type TerrainSample struct {
	Elevation float64 `json:"elevation"` // normalized, [0, 1]
	Altitude  float64 `json:"altitude"`  // meters relative to sea level
}

// CellRecord is the generated state of one cell.
type CellRecord struct {
	ID              grid.CellID    `json:"id"`
	Lat             float64        `json:"lat"`
	Lng             float64        `json:"lng"`
	Terrain         TerrainSample  `json:"terrain"`
	Climate         climate.Sample `json:"climate"`
	Biome           biome.Biome    `json:"biome"`
	IsOcean         bool           `json:"is_ocean"`
	OceanDistanceKm float64        `json:"ocean_distance_km"`
}
