package worldgen

import (
	"github.com/jengzang/worldsynth/internal/biome"
)

// FeatureCollection is a GeoJSON feature collection with one point per cell.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a GeoJSON point feature.
type Feature struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Geometry   Point             `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Point is a GeoJSON point. Coordinates are [lng, lat].
type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureProperties carries the per-cell values shown on a map.
type FeatureProperties struct {
	Elevation     float64     `json:"elevation"`
	Altitude      float64     `json:"altitude"`
	Temperature   float64     `json:"temperature"`
	Precipitation float64     `json:"precipitation"`
	Humidity      float64     `json:"humidity"`
	WindSpeed     float64     `json:"wind_speed"`
	WindDirection float64     `json:"wind_direction"`
	Biome         biome.Biome `json:"biome"`
	Color         string      `json:"color"`
	IsOcean       bool        `json:"is_ocean"`
}

// FeatureCollection renders the world as GeoJSON.
func (w *World) FeatureCollection() FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, len(w.cells)),
	}
	for i := range w.cells {
		c := &w.cells[i]
		fc.Features[i] = Feature{
			Type: "Feature",
			ID:   c.ID.String(),
			Geometry: Point{
				Type:        "Point",
				Coordinates: [2]float64{c.Lng, c.Lat},
			},
			Properties: FeatureProperties{
				Elevation:     c.Terrain.Elevation,
				Altitude:      c.Terrain.Altitude,
				Temperature:   c.Climate.Temperature,
				Precipitation: c.Climate.Precipitation,
				Humidity:      c.Climate.Humidity,
				WindSpeed:     c.Climate.Speed,
				WindDirection: c.Climate.Direction,
				Biome:         c.Biome,
				Color:         biome.Color(c.Biome),
				IsOcean:       c.IsOcean,
			},
		}
	}
	return fc
}
