package climate

import (
	"github.com/jengzang/worldsynth/internal/planet"
)

// Sample is the climate of one cell. Wind fields stay zero until the
// second generation pass fills them.
type Sample struct {
	Temperature   float64 `json:"temperature"`   // °C
	Precipitation float64 `json:"precipitation"` // mm/year
	Humidity      float64 `json:"humidity"`      // percent
	Wind
}

// Compute returns the first-pass climate of a cell. When annual is set the
// temperature and precipitation are averaged over the orbit; otherwise they
// are taken at p.DayOfYear.
func Compute(p planet.Parameters, lat, lng, altitude, oceanDistanceKm float64, annual bool) Sample {
	var t, precip float64
	if annual {
		t = AnnualTemperature(p, lat, lng, altitude)
		precip = AnnualPrecipitation(p, lat, lng, altitude, oceanDistanceKm)
	} else {
		t = Temperature(p, lat, lng, altitude, p.DayOfYear)
		precip = Precipitation(lat, altitude, t, oceanDistanceKm)
	}
	return Sample{
		Temperature:   t,
		Precipitation: precip,
		Humidity:      Humidity(t, precip),
	}
}
