// Package planet holds the immutable description of a planet that drives a
// world generation run.
package planet

import (
	"math"
)

// TidalLockPeriodHours is the rotation period at and above which a body is
// treated as tidally locked.
const TidalLockPeriodHours = 1000.0

// Parameters describes a planet. Every field is required; build a value
// from a preset and override fields rather than relying on zero values.
type Parameters struct {
	Radius            float64 `json:"radius" toml:"radius"`                         // meters
	SolarConstant     float64 `json:"solar_constant" toml:"solar_constant"`         // W/m²
	OrbitalTilt       float64 `json:"orbital_tilt" toml:"orbital_tilt"`             // degrees
	RotationPeriod    float64 `json:"rotation_period" toml:"rotation_period"`       // hours
	OrbitalPeriod     float64 `json:"orbital_period" toml:"orbital_period"`         // days
	SeaLevel          float64 `json:"sea_level" toml:"sea_level"`                   // normalized elevation threshold
	AtmosphereDensity float64 `json:"atmosphere_density" toml:"atmosphere_density"` // Earth = 1
	GridResolution    int     `json:"grid_resolution" toml:"grid_resolution"`       // S2 level
	TimeOfDay         float64 `json:"time_of_day" toml:"time_of_day"`               // hours at longitude 0
	DayOfYear         float64 `json:"day_of_year" toml:"day_of_year"`               // days since the vernal equinox
}

// MaxResolution is the highest supported grid resolution.
const MaxResolution = 10

// TidallyLocked reports whether one face of the planet permanently faces its star.
func (p Parameters) TidallyLocked() bool {
	return p.RotationPeriod >= TidalLockPeriodHours
}

// Validate checks every field and returns the first problem as a *ConfigError.
func (p Parameters) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"radius", p.Radius},
		{"solar_constant", p.SolarConstant},
		{"orbital_tilt", p.OrbitalTilt},
		{"rotation_period", p.RotationPeriod},
		{"orbital_period", p.OrbitalPeriod},
		{"sea_level", p.SeaLevel},
		{"atmosphere_density", p.AtmosphereDensity},
		{"time_of_day", p.TimeOfDay},
		{"day_of_year", p.DayOfYear},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return Errorf(c.field, "must be a finite number")
		}
	}

	switch {
	case p.Radius <= 0:
		return Errorf("radius", "must be positive, got %g", p.Radius)
	case p.SolarConstant < 0:
		return Errorf("solar_constant", "must not be negative, got %g", p.SolarConstant)
	case p.OrbitalTilt < 0 || p.OrbitalTilt > 180:
		return Errorf("orbital_tilt", "must be within [0, 180], got %g", p.OrbitalTilt)
	case p.RotationPeriod <= 0:
		return Errorf("rotation_period", "must be positive, got %g", p.RotationPeriod)
	case p.OrbitalPeriod <= 0:
		return Errorf("orbital_period", "must be positive, got %g", p.OrbitalPeriod)
	case p.SeaLevel < 0 || p.SeaLevel > 1:
		return Errorf("sea_level", "must be within [0, 1], got %g", p.SeaLevel)
	case p.AtmosphereDensity < 0:
		return Errorf("atmosphere_density", "must not be negative, got %g", p.AtmosphereDensity)
	case p.GridResolution < 0 || p.GridResolution > MaxResolution:
		return Errorf("grid_resolution", "must be within [0, %d], got %d", MaxResolution, p.GridResolution)
	case p.TimeOfDay < 0 || p.TimeOfDay > 24:
		return Errorf("time_of_day", "must be within [0, 24], got %g", p.TimeOfDay)
	case p.DayOfYear < 0:
		return Errorf("day_of_year", "must not be negative, got %g", p.DayOfYear)
	}
	return nil
}

// Altitude converts a normalized elevation into meters relative to sea level.
// Land rises to MaxLandHeight at elevation 1 and the sea floor sinks to
// -MaxOceanDepth at elevation 0; sea level itself maps to 0.
func (p Parameters) Altitude(elevation float64) float64 {
	switch {
	case elevation >= p.SeaLevel:
		if p.SeaLevel >= 1 {
			return 0
		}
		return (elevation - p.SeaLevel) / (1 - p.SeaLevel) * MaxLandHeight
	case p.SeaLevel <= 0:
		return -MaxOceanDepth
	default:
		return (elevation - p.SeaLevel) / p.SeaLevel * MaxOceanDepth
	}
}

// Vertical extent of the normalized elevation range.
const (
	MaxLandHeight = 8000.0
	MaxOceanDepth = 10000.0
)
