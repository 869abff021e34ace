package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and shading settings.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	// Shading settings
	Azimuth   float64  `json:"light_azimuth"`
	Elevation *float64 `json:"light_elevation"`
	SlopeDeg  *float64 `json:"slope_degrees"`
	Exposure  float64  `json:"exposure"`
	Strength  *float64 `json:"normal_strength"`

	// Output settings
	OutputSize int `json:"output_size"`
	Workers    int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when set.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.OutputSize > 0 {
		c.OutputSize = flags.OutputSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Azimuth != nil {
		c.Azimuth = *flags.Azimuth
	}
	if flags.Elevation != nil {
		c.Elevation = flags.Elevation
	}

	if c.InputDir == "" {
		c.InputDir = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.InputDir, "shaded")
	} else if !filepath.IsAbs(c.OutputDir) && flags.OutputDir == "" {
		// relative paths in the file are relative to the input dir
		c.OutputDir = filepath.Join(c.InputDir, c.OutputDir)
	}

	if c.Elevation == nil {
		c.Elevation = ptr(45.0)
	}
	if c.SlopeDeg == nil {
		c.SlopeDeg = ptr(35.0)
	}
	// 0 is a valid strength (flat), so only nil or negative falls back
	if flags.Strength != nil {
		c.Strength = flags.Strength
	}
	if c.Strength == nil || *c.Strength < 0 {
		c.Strength = ptr(1.0)
	}
	if c.Exposure <= 0 {
		c.Exposure = 1.05
	}
	if c.OutputSize <= 0 {
		c.OutputSize = 256
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
// Nil pointers mean the flag was not given.
type Flags struct {
	InputDir   string
	OutputDir  string
	OutputSize int
	Workers    int
	Strength   *float64
	Azimuth    *float64
	Elevation  *float64
}

func ptr(f float64) *float64 { return &f }
