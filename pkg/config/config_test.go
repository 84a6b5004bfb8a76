package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if cfg != def {
		t.Errorf("Config = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raytracer.yaml")
	content := "scene: bunny\nshadows: soft\nglobal_illumination: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Scene != "bunny" || cfg.Shadows != "soft" || !cfg.GlobalIllumination {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	// unset fields keep their defaults
	if cfg.Width != Default().Width || cfg.Lighting != "combined" {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raytracer.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
