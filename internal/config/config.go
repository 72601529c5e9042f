package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/pelletier/go-toml"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/worldgen"
)

// Config 应用配置
type Config struct {
	Port          string `toml:"port"`
	DBPath        string `toml:"db_path"`
	JWTSecret     string `toml:"jwt_secret"`
	MaxResolution int    `toml:"max_resolution"` // HTTP 接口允许的最大网格分辨率
	Workers       int    `toml:"workers"`        // 每次生成使用的 goroutine 数
	RateLimit     int    `toml:"rate_limit"`     // 每个 IP 每分钟请求数
	PresetsFile   string `toml:"presets_file"`   // 额外预设 TOML 文件
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Port:          ":8080",
		DBPath:        "./data/worldsynth.db",
		JWTSecret:     "your-secret-key-change-in-production",
		MaxResolution: 7,
		Workers:       runtime.NumCPU(),
		RateLimit:     60,
	}
}

// Load 加载配置：默认值 -> CONFIG_FILE 指定的 TOML 文件 -> 环境变量
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile 用 TOML 文件覆盖已设置的字段
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var f Config
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.merge(f)
	return nil
}

// merge 复制 f 中的非零字段
func (c *Config) merge(f Config) {
	if f.Port != "" {
		c.Port = f.Port
	}
	if f.DBPath != "" {
		c.DBPath = f.DBPath
	}
	if f.JWTSecret != "" {
		c.JWTSecret = f.JWTSecret
	}
	if f.PresetsFile != "" {
		c.PresetsFile = f.PresetsFile
	}
	if f.MaxResolution != 0 {
		c.MaxResolution = f.MaxResolution
	}
	if f.Workers != 0 {
		c.Workers = f.Workers
	}
	if f.RateLimit != 0 {
		c.RateLimit = f.RateLimit
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("PRESETS_FILE"); v != "" {
		c.PresetsFile = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"MAX_RESOLUTION", &c.MaxResolution},
		{"WORKERS", &c.Workers},
		{"RATE_LIMIT", &c.RateLimit},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.name, err)
		}
		*e.dst = n
	}
	return nil
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	if c.MaxResolution < 0 || c.MaxResolution > planet.MaxResolution {
		return fmt.Errorf("max_resolution must be within [0, %d], got %d", planet.MaxResolution, c.MaxResolution)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.RateLimit < 1 {
		return fmt.Errorf("rate_limit must be at least 1, got %d", c.RateLimit)
	}
	return nil
}

// presetFile 是预设文件的结构：[[preset]] 数组
type presetFile struct {
	Presets []worldgen.Preset `toml:"preset"`
}

// LoadPresets 读取 TOML 预设文件并逐个校验
func LoadPresets(path string) ([]worldgen.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var f presetFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}
	for _, p := range f.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return f.Presets, nil
}
