package planet

import (
	"errors"
	"math"
	"testing"
)

func valid() Parameters {
	return Parameters{
		Radius:            6371000,
		SolarConstant:     1361,
		OrbitalTilt:       23.5,
		RotationPeriod:    24,
		OrbitalPeriod:     365.25,
		SeaLevel:          0.5,
		AtmosphereDensity: 1,
		GridResolution:    4,
		TimeOfDay:         12,
	}
}

func TestValidate(t *testing.T) {
	if err := valid().Validate(); err != nil {
		t.Fatalf("valid parameters rejected: %v", err)
	}

	tests := []struct {
		field  string
		mutate func(*Parameters)
	}{
		{"radius", func(p *Parameters) { p.Radius = 0 }},
		{"radius", func(p *Parameters) { p.Radius = math.Inf(1) }},
		{"solar_constant", func(p *Parameters) { p.SolarConstant = -1 }},
		{"orbital_tilt", func(p *Parameters) { p.OrbitalTilt = 181 }},
		{"rotation_period", func(p *Parameters) { p.RotationPeriod = 0 }},
		{"orbital_period", func(p *Parameters) { p.OrbitalPeriod = -3 }},
		{"sea_level", func(p *Parameters) { p.SeaLevel = 1.5 }},
		{"sea_level", func(p *Parameters) { p.SeaLevel = math.NaN() }},
		{"atmosphere_density", func(p *Parameters) { p.AtmosphereDensity = -0.1 }},
		{"grid_resolution", func(p *Parameters) { p.GridResolution = MaxResolution + 1 }},
		{"grid_resolution", func(p *Parameters) { p.GridResolution = -1 }},
		{"time_of_day", func(p *Parameters) { p.TimeOfDay = 25 }},
		{"day_of_year", func(p *Parameters) { p.DayOfYear = -1 }},
	}
	for _, tt := range tests {
		p := valid()
		tt.mutate(&p)
		err := p.Validate()
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("%s: expected ConfigError, got %v", tt.field, err)
		}
		if cfgErr.Field != tt.field {
			t.Errorf("field = %q, want %q (%v)", cfgErr.Field, tt.field, err)
		}
	}
}

func TestTidalLockBoundary(t *testing.T) {
	p := valid()
	p.RotationPeriod = 999.999
	if p.TidallyLocked() {
		t.Fatal("999.999h should rotate")
	}
	p.RotationPeriod = TidalLockPeriodHours
	if !p.TidallyLocked() {
		t.Fatal("1000h should be locked")
	}
}

func TestAltitude(t *testing.T) {
	p := valid()
	tests := []struct {
		elevation, want float64
	}{
		{0.5, 0},
		{1, MaxLandHeight},
		{0.75, MaxLandHeight / 2},
		{0, -MaxOceanDepth},
		{0.25, -MaxOceanDepth / 2},
	}
	for _, tt := range tests {
		if got := p.Altitude(tt.elevation); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Altitude(%v) = %v, want %v", tt.elevation, got, tt.want)
		}
	}

	p.SeaLevel = 1
	if got := p.Altitude(1); got != 0 {
		t.Errorf("sea level 1: Altitude(1) = %v", got)
	}
	if got := p.Altitude(0.5); got >= 0 {
		t.Errorf("sea level 1: Altitude(0.5) = %v, want below sea level", got)
	}

	p.SeaLevel = 0
	if got := p.Altitude(0); got != 0 {
		t.Errorf("sea level 0: Altitude(0) = %v", got)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := Errorf("radius", "must be positive, got %g", -1.0)
	if err.Error() != "invalid radius: must be positive, got -1" {
		t.Fatalf("message = %q", err.Error())
	}
}
