// Package climate computes the steady-state climate of a single cell:
// insolation, temperature, precipitation, humidity and wind.
//
// All functions are pure and safe for concurrent use.
package climate

import (
	"math"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/stats"
)

// Radiative constants.
const (
	StefanBoltzmann = 5.670374419e-8 // W/m²/K⁴
	Albedo          = 0.3
	// Insolation reaching a point is spread over the whole sphere when
	// converted to an equilibrium temperature.
	Redistribution = 0.25
	Kelvin         = 273.15
)

// Surface corrections.
const (
	LapseRate        = 6.5  // °C per km above sea level
	GreenhouseOffset = 45.0 // °C per unit of atmosphere density
)

const (
	// Fraction of the solar constant kept on the dark side of a tidally
	// locked planet, per unit of atmosphere density.
	lockedAmbientFraction = 0.02
	// Fraction of the solar constant retained at night on a rotating
	// planet, per unit of atmosphere density and per 24h of rotation period.
	nightRetentionFraction = 0.1
	maxNightRetention      = 0.15
	clockHours             = 24.0
)

// IsTidallyLocked reports whether p uses the locked insolation regime
// (rotation period >= planet.TidalLockPeriodHours).
func IsTidallyLocked(p planet.Parameters) bool {
	return p.TidallyLocked()
}

// Insolation returns the incoming solar power per unit area (W/m²) at a
// coordinate in degrees, day days after the vernal equinox.
func Insolation(p planet.Parameters, lat, lng, day float64) float64 {
	if p.TidallyLocked() {
		return lockedInsolation(p, lat, lng)
	}
	return rotatingInsolation(p, lat, lng, day)
}

// LockedAmbient is the insolation floor of a tidally locked planet.
func LockedAmbient(p planet.Parameters) float64 {
	return p.SolarConstant * lockedAmbientFraction * p.AtmosphereDensity
}

// lockedInsolation measures the angular distance from a fixed sub-stellar
// point at (0, 0).
func lockedInsolation(p planet.Parameters, lat, lng float64) float64 {
	phi := lat * math.Pi / 180
	lambda := lng * math.Pi / 180
	cosDistance := math.Cos(phi) * math.Cos(lambda)
	raw := p.SolarConstant * math.Max(0, cosDistance*math.Cos(phi))
	return math.Max(raw, LockedAmbient(p))
}

// NightRetention is the heat retained by the atmosphere while the sun is
// down on a rotating planet.
func NightRetention(p planet.Parameters) float64 {
	frac := nightRetentionFraction * p.AtmosphereDensity * p.RotationPeriod / clockHours
	return p.SolarConstant * stats.Clamp(frac, 0, maxNightRetention)
}

// Declination returns the solar declination in radians.
func Declination(p planet.Parameters, day float64) float64 {
	tilt := p.OrbitalTilt * math.Pi / 180
	return tilt * math.Sin(2*math.Pi*day/p.OrbitalPeriod)
}

// SolarElevation returns the sine of the sun's elevation angle. TimeOfDay is
// read on a 24-hour clock at longitude 0; local noon falls where the hour
// angle is zero.
func SolarElevation(p planet.Parameters, lat, lng, day float64) float64 {
	phi := lat * math.Pi / 180
	dec := Declination(p, day)
	hourAngle := 2*math.Pi*p.TimeOfDay/clockHours - math.Pi + lng*math.Pi/180
	return math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(hourAngle)
}

func rotatingInsolation(p planet.Parameters, lat, lng, day float64) float64 {
	night := NightRetention(p)
	sinElev := SolarElevation(p, lat, lng, day)
	if sinElev <= 0 {
		return night
	}
	// Retention carries into twilight so temperature has no step at sunrise.
	return math.Max(p.SolarConstant*sinElev, night)
}

// BlackbodyCelsius converts insolation to an equilibrium temperature in °C.
func BlackbodyCelsius(insolation float64) float64 {
	absorbed := math.Max(0, insolation) * (1 - Albedo) * Redistribution
	return math.Pow(absorbed/StefanBoltzmann, 0.25) - Kelvin
}

// Temperature returns the surface temperature in °C for a cell at altitude
// meters relative to sea level. It never drops below absolute zero.
func Temperature(p planet.Parameters, lat, lng, altitude, day float64) float64 {
	t := BlackbodyCelsius(Insolation(p, lat, lng, day))
	t -= LapseRate * math.Max(0, altitude) / 1000
	t += GreenhouseOffset * p.AtmosphereDensity
	return math.Max(t, -Kelvin)
}

// AnnualSamples is the number of evenly spaced orbital positions averaged
// by the annual variants.
const AnnualSamples = 12

// sampleDay returns the k-th annual sample day.
func sampleDay(p planet.Parameters, k int) float64 {
	return float64(k) * p.OrbitalPeriod / AnnualSamples
}

// AnnualTemperature averages Temperature over the orbital period.
func AnnualTemperature(p planet.Parameters, lat, lng, altitude float64) float64 {
	var sum float64
	for k := 0; k < AnnualSamples; k++ {
		sum += Temperature(p, lat, lng, altitude, sampleDay(p, k))
	}
	return sum / AnnualSamples
}
