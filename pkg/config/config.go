// Package config loads the optional YAML run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the host shell needs to start a session. Zero
// values fall back to the defaults below, so a partial file is fine.
type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Workers   int    `yaml:"workers"` // 0 = one per CPU
	Scene     string `yaml:"scene"`
	AssetDir  string `yaml:"asset_dir"`

	Lighting           string `yaml:"lighting"` // observed-area | radiance | brdf | combined
	Shadows            string `yaml:"shadows"`  // hard | soft | none
	GlobalIllumination bool   `yaml:"global_illumination"`

	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Width:     320,
		Height:    180,
		TargetFPS: 30,
		Scene:     "reference",
		AssetDir:  "assets",
		Lighting:  "combined",
		Shadows:   "hard",
	}
}

// Load reads the YAML file at path, layered over the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := Default()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = def.TargetFPS
	}
	if c.Scene == "" {
		c.Scene = def.Scene
	}
	if c.AssetDir == "" {
		c.AssetDir = def.AssetDir
	}
	if c.Lighting == "" {
		c.Lighting = def.Lighting
	}
	if c.Shadows == "" {
		c.Shadows = def.Shadows
	}
	return c
}
