package worldgen

import (
	"github.com/jengzang/worldsynth/internal/biome"
	"github.com/jengzang/worldsynth/internal/spatial"
	"github.com/jengzang/worldsynth/internal/stats"
)

// Statistics summarizes a world.
type Statistics struct {
	TotalCells   int                 `json:"total_cells"`
	LandCells    int                 `json:"land_cells"`
	OceanCells   int                 `json:"ocean_cells"`
	LandFraction float64             `json:"land_fraction"`
	Biomes       map[biome.Biome]int `json:"biomes"`
	// BiomeDiversity is the normalized Shannon entropy of the biome
	// histogram over all twelve labels.
	BiomeDiversity float64 `json:"biome_diversity"`

	MeanTemperature   float64 `json:"mean_temperature"`
	MedianTemperature float64 `json:"median_temperature"`
	TemperatureStdDev float64 `json:"temperature_stddev"`
	MinTemperature    float64 `json:"min_temperature"`
	MaxTemperature    float64 `json:"max_temperature"`
	MeanPrecipitation float64 `json:"mean_precipitation"`
	MeanHumidity      float64 `json:"mean_humidity"`
	MeanWindSpeed     float64 `json:"mean_wind_speed"`
	// PrevailingWindDirection is the speed-weighted circular mean of wind
	// directions.
	PrevailingWindDirection float64 `json:"prevailing_wind_direction"`
	// WindSteadiness is the speed-weighted mean resultant length of wind
	// directions: 1 when every cell blows the same way, 0 when they cancel.
	WindSteadiness float64 `json:"wind_steadiness"`
}

// Statistics computes the summary from the records.
func (w *World) Statistics() Statistics {
	n := len(w.cells)
	s := Statistics{
		TotalCells: n,
		Biomes:     make(map[biome.Biome]int),
	}
	if n == 0 {
		return s
	}

	temps := make([]float64, n)
	precip := make([]float64, n)
	humidity := make([]float64, n)
	speeds := make([]float64, n)
	dirs := make([]float64, n)
	for i := range w.cells {
		c := &w.cells[i]
		if c.IsOcean {
			s.OceanCells++
		} else {
			s.LandCells++
		}
		s.Biomes[c.Biome]++
		temps[i] = c.Climate.Temperature
		precip[i] = c.Climate.Precipitation
		humidity[i] = c.Climate.Humidity
		speeds[i] = c.Climate.Speed
		dirs[i] = c.Climate.Direction
	}

	// Fixed label order keeps the entropy sum bit-identical between calls.
	labels := biome.All()
	counts := make([]float64, 0, len(labels))
	for _, b := range labels {
		if v := s.Biomes[b]; v > 0 {
			counts = append(counts, float64(v))
		}
	}

	s.LandFraction = float64(s.LandCells) / float64(n)
	s.BiomeDiversity = stats.NormalizedEntropy(counts, len(labels))
	s.MeanTemperature = stats.Mean(temps)
	s.MedianTemperature = stats.Median(temps)
	s.TemperatureStdDev = stats.StdDev(temps)
	s.MinTemperature = stats.Min(temps)
	s.MaxTemperature = stats.Max(temps)
	s.MeanPrecipitation = stats.Mean(precip)
	s.MeanHumidity = stats.Mean(humidity)
	s.MeanWindSpeed = stats.Mean(speeds)
	s.PrevailingWindDirection = spatial.CircularMeanDegrees(dirs, speeds)
	s.WindSteadiness = spatial.MeanResultantLength(dirs, speeds)
	return s
}
