package terrain

import (
	"math"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/stats"
)

// HeightMap is a decoded equirectangular raster. Row 0 is latitude +90,
// column 0 is longitude -180. Values are normalized to [0, 1]; Min and Max
// are the source range before normalization and are kept as metadata.
type HeightMap struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Data   []float64 `json:"data"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
}

// Validate rejects rasters that cannot be sampled.
func (h *HeightMap) Validate() error {
	if h == nil {
		return planet.Errorf("height_map", "is missing")
	}
	if h.Width <= 0 || h.Height <= 0 {
		return planet.Errorf("height_map", "dimensions must be positive, got %dx%d", h.Width, h.Height)
	}
	if h.Width > math.MaxInt32 || h.Height > math.MaxInt32/h.Width {
		return planet.Errorf("height_map", "dimensions %dx%d are too large", h.Width, h.Height)
	}
	if len(h.Data) != h.Width*h.Height {
		return planet.Errorf("height_map", "data length %d does not match %dx%d", len(h.Data), h.Width, h.Height)
	}
	if math.IsNaN(h.Min) || math.IsNaN(h.Max) || h.Min > h.Max {
		return planet.Errorf("height_map", "declared range [%g, %g] is invalid", h.Min, h.Max)
	}
	for i, v := range h.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return planet.Errorf("height_map", "sample %d is not a finite number", i)
		}
	}
	return nil
}

// SampleExternalHeightMap returns the nearest raster sample to (lat, lng).
// Longitude wraps around the raster, latitude clamps to the first and last row.
// The raster must have passed Validate.
func SampleExternalHeightMap(h *HeightMap, lat, lng float64) float64 {
	col := int(math.Floor((lng + 180) / 360 * float64(h.Width)))
	col %= h.Width
	if col < 0 {
		col += h.Width
	}

	row := int(math.Floor((90 - lat) / 180 * float64(h.Height)))
	row = stats.Clamp(row, 0, h.Height-1)

	return stats.Clamp(h.Data[row*h.Width+col], 0, 1)
}

// HeightMapSource adapts a validated raster to Source.
type HeightMapSource struct {
	raster *HeightMap
}

// NewHeightMapSource validates h and wraps it.
func NewHeightMapSource(h *HeightMap) (*HeightMapSource, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return &HeightMapSource{raster: h}, nil
}

// ElevationAt implements Source.
func (s *HeightMapSource) ElevationAt(lat, lng float64) float64 {
	return SampleExternalHeightMap(s.raster, lat, lng)
}

// Raster returns the wrapped height map.
func (s *HeightMapSource) Raster() *HeightMap {
	return s.raster
}
