package climate

import (
	"math"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/stats"
)

const (
	orographicRate   = 0.2    // mm/year per meter of altitude
	moistureCapacity = 600.0  // mm/year at the warm end of the reference range
	oceanBonus       = 500.0  // mm/year next to the coast
	oceanDecayKm     = 1000.0 // e-folding distance of the coastal bonus
)

// baseRainfall is the latitudinal rainfall curve in mm/year.
//
//	|lat| < 10   equatorial   2000
//	|lat| < 30   tropical     1200
//	|lat| < 60   temperate     800
//	otherwise    polar         300
func baseRainfall(lat float64) float64 {
	switch a := math.Abs(lat); {
	case a < 10:
		return 2000
	case a < 30:
		return 1200
	case a < 60:
		return 800
	default:
		return 300
	}
}

// temperatureFactor maps [-10, 30] °C linearly onto [0, 1].
func temperatureFactor(temperature float64) float64 {
	return stats.Clamp((temperature+10)/40, 0, 1)
}

// Precipitation returns annual precipitation in mm. It is never negative.
func Precipitation(lat, altitude, temperature, oceanDistanceKm float64) float64 {
	p := baseRainfall(lat)
	p += orographicRate * math.Max(0, altitude)
	p += moistureCapacity * temperatureFactor(temperature)
	p += oceanBonus * math.Exp(-math.Max(0, oceanDistanceKm)/oceanDecayKm)
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return p
}

// AnnualPrecipitation averages Precipitation over the orbital period using
// the temperature of each sample day.
func AnnualPrecipitation(p planet.Parameters, lat, lng, altitude, oceanDistanceKm float64) float64 {
	var sum float64
	for k := 0; k < AnnualSamples; k++ {
		t := Temperature(p, lat, lng, altitude, sampleDay(p, k))
		sum += Precipitation(lat, altitude, t, oceanDistanceKm)
	}
	return sum / AnnualSamples
}

// Humidity returns relative humidity in percent.
func Humidity(temperature, precipitation float64) float64 {
	pf := stats.Clamp(precipitation/2000, 0, 1)
	h := temperatureFactor(temperature) * pf * 100
	if math.IsNaN(h) {
		return 0
	}
	return h
}
