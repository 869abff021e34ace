package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"input_dir": "/maps", "output_dir": "out", "light_azimuth": 120, "light_elevation": 0, "workers": 3}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InputDir != "/maps" || cfg.Azimuth != 120 || cfg.Workers != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Elevation == nil || *cfg.Elevation != 0 {
		t.Errorf("explicit zero elevation lost: %v", cfg.Elevation)
	}

	cfg.Resolve(Flags{})
	if cfg.OutputDir != filepath.Join("/maps", "out") {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if *cfg.Elevation != 0 {
		t.Errorf("Resolve replaced explicit elevation: %v", *cfg.Elevation)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected read error")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.InputDir != "." || cfg.OutputDir != "shaded" {
		t.Errorf("paths = %q, %q", cfg.InputDir, cfg.OutputDir)
	}
	if *cfg.Elevation != 45 || *cfg.SlopeDeg != 35 || cfg.Exposure != 1.05 || *cfg.Strength != 1 {
		t.Errorf("shading defaults = %v %v %v %v", *cfg.Elevation, *cfg.SlopeDeg, cfg.Exposure, *cfg.Strength)
	}
	if cfg.OutputSize != 256 || cfg.Workers != runtime.NumCPU() {
		t.Errorf("output defaults = %d %d", cfg.OutputSize, cfg.Workers)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	az, el, strength := 300.0, 10.0, 0.5
	cfg := Config{InputDir: "a", OutputDir: "b", OutputSize: 64, Workers: 2, Azimuth: 5}
	cfg.Resolve(Flags{
		InputDir:   "in",
		OutputDir:  "rel-out",
		OutputSize: 512,
		Workers:    8,
		Strength:   &strength,
		Azimuth:    &az,
		Elevation:  &el,
	})

	if cfg.InputDir != "in" || cfg.OutputDir != "rel-out" {
		t.Errorf("paths = %q, %q", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.OutputSize != 512 || cfg.Workers != 8 || cfg.Azimuth != 300 || *cfg.Elevation != 10 || *cfg.Strength != 0.5 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestResolveZeroStrength(t *testing.T) {
	zero := 0.0
	var fromFlag Config
	fromFlag.Resolve(Flags{Strength: &zero})
	if *fromFlag.Strength != 0 {
		t.Errorf("flag strength 0 resolved to %v", *fromFlag.Strength)
	}

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"normal_strength": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	fromFile, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	fromFile.Resolve(Flags{})
	if *fromFile.Strength != 0 {
		t.Errorf("file strength 0 resolved to %v", *fromFile.Strength)
	}

	neg := -2.0
	var bad Config
	bad.Resolve(Flags{Strength: &neg})
	if *bad.Strength != 1 {
		t.Errorf("negative strength resolved to %v, want 1", *bad.Strength)
	}
}
