package models

import (
	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/terrain"
	"github.com/jengzang/worldsynth/internal/worldgen"
)

// Preset 存储的行星预设
type Preset struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Parameters  planet.Parameters   `json:"parameters"`
	Noise       terrain.NoiseConfig `json:"noise"`
	Builtin     bool                `json:"builtin"`
	CreatedAt   int64               `json:"created_at"` // Unix timestamp
	UpdatedAt   int64               `json:"updated_at"` // Unix timestamp
}

// PresetFrom 从生成预设构造存储模型
func PresetFrom(p worldgen.Preset, builtin bool) *Preset {
	return &Preset{
		Name:        p.Name,
		Description: p.Description,
		Parameters:  p.Parameters,
		Noise:       p.Noise,
		Builtin:     builtin,
	}
}

// WorldPreset 转换为生成预设
func (p *Preset) WorldPreset() worldgen.Preset {
	return worldgen.Preset{
		Name:        p.Name,
		Description: p.Description,
		Parameters:  p.Parameters,
		Noise:       p.Noise,
	}
}
