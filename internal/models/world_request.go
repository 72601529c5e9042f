package models

import (
	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/terrain"
	"github.com/jengzang/worldsynth/internal/worldgen"
)

// Output formats
const (
	FormatJSON    = "json"
	FormatGeoJSON = "geojson"
)

// ParameterOverrides 覆盖预设中的行星参数，nil 字段保持不变
type ParameterOverrides struct {
	Radius            *float64 `json:"radius"`
	SolarConstant     *float64 `json:"solar_constant"`
	OrbitalTilt       *float64 `json:"orbital_tilt"`
	RotationPeriod    *float64 `json:"rotation_period"`
	OrbitalPeriod     *float64 `json:"orbital_period"`
	SeaLevel          *float64 `json:"sea_level"`
	AtmosphereDensity *float64 `json:"atmosphere_density"`
	GridResolution    *int     `json:"grid_resolution"`
	TimeOfDay         *float64 `json:"time_of_day"`
	DayOfYear         *float64 `json:"day_of_year"`
}

// Apply 返回覆盖后的参数
func (o *ParameterOverrides) Apply(p planet.Parameters) planet.Parameters {
	if o == nil {
		return p
	}
	setFloat(&p.Radius, o.Radius)
	setFloat(&p.SolarConstant, o.SolarConstant)
	setFloat(&p.OrbitalTilt, o.OrbitalTilt)
	setFloat(&p.RotationPeriod, o.RotationPeriod)
	setFloat(&p.OrbitalPeriod, o.OrbitalPeriod)
	setFloat(&p.SeaLevel, o.SeaLevel)
	setFloat(&p.AtmosphereDensity, o.AtmosphereDensity)
	setFloat(&p.TimeOfDay, o.TimeOfDay)
	setFloat(&p.DayOfYear, o.DayOfYear)
	if o.GridResolution != nil {
		p.GridResolution = *o.GridResolution
	}
	return p
}

// NoiseOverrides 覆盖预设中的噪声配置
type NoiseOverrides struct {
	Seed                *int64   `json:"seed"`
	Octaves             *int     `json:"octaves"`
	Persistence         *float64 `json:"persistence"`
	Lacunarity          *float64 `json:"lacunarity"`
	Frequency           *float64 `json:"frequency"`
	RedistributionPower *float64 `json:"redistribution_power"`
	Basis               *string  `json:"basis"`
}

// Apply 返回覆盖后的噪声配置
func (o *NoiseOverrides) Apply(n terrain.NoiseConfig) terrain.NoiseConfig {
	if o == nil {
		return n
	}
	if o.Seed != nil {
		n.Seed = *o.Seed
	}
	if o.Octaves != nil {
		n.Octaves = *o.Octaves
	}
	setFloat(&n.Persistence, o.Persistence)
	setFloat(&n.Lacunarity, o.Lacunarity)
	setFloat(&n.Frequency, o.Frequency)
	setFloat(&n.RedistributionPower, o.RedistributionPower)
	if o.Basis != nil {
		n.Basis = terrain.Basis(*o.Basis)
	}
	return n
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// GenerateRequest POST /api/v1/worlds 请求体
type GenerateRequest struct {
	Preset        string              `json:"preset"` // 默认 earth
	Parameters    *ParameterOverrides `json:"parameters"`
	Noise         *NoiseOverrides     `json:"noise"`
	HeightMap     *terrain.HeightMap  `json:"height_map"`
	AnnualAverage bool                `json:"annual_average"`
	Format        string              `json:"format"` // json, geojson
	IncludeCells  bool                `json:"include_cells"`
}

// CellRequest POST /api/v1/worlds/cell 请求体，按坐标或按 ID 查询
type CellRequest struct {
	GenerateRequest
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
	ID  string   `json:"id"`
}

// WorldResponse 生成结果
type WorldResponse struct {
	RunID         string                `json:"run_id"`
	Preset        string                `json:"preset"`
	Parameters    planet.Parameters     `json:"parameters"`
	Noise         *terrain.NoiseConfig  `json:"noise,omitempty"`
	Source        string                `json:"source"`
	AnnualAverage bool                  `json:"annual_average"`
	Fingerprint   string                `json:"fingerprint"`
	Statistics    worldgen.Statistics   `json:"statistics"`
	Cells         []worldgen.CellRecord `json:"cells,omitempty"`
}

// BiomeInfo 图例条目
type BiomeInfo struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}
