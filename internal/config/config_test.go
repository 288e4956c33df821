package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/helix/internal/chain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Chain.Length != DefaultLength {
		t.Errorf("expected length %d, got %d", DefaultLength, cfg.Chain.Length)
	}
	if cfg.Step <= 0 {
		t.Error("step should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParamsTranslation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chain.Force = ForceConfig{X: 1, Y: -2, Z: 0.5}
	cfg.ForceMode = "constant"

	p := cfg.Params()
	if p.ExternalForce != (chain.Vec3{X: 1, Y: -2, Z: 0.5}) {
		t.Errorf("force = %v", p.ExternalForce)
	}
	if p.ForceMode != chain.ForceConstant {
		t.Error("expected constant force mode")
	}
}

func TestValidateRejectsBadDomain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chain.Rigidity = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero rigidity")
	}

	cfg = DefaultConfig()
	cfg.Chain.Persistence = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative persistence")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helix.yaml")

	cfg := DefaultConfig()
	cfg.Chain.Temperature = 450
	cfg.Chain.Force.Z = -3.5
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Chain.Temperature != 450 {
		t.Errorf("temperature = %v, want 450", loaded.Chain.Temperature)
	}
	if loaded.Chain.Force.Z != -3.5 {
		t.Errorf("force.z = %v, want -3.5", loaded.Chain.Force.Z)
	}
	// omitted fields fall back to defaults
	if loaded.FPS != DefaultFPS {
		t.Errorf("fps = %d, want %d", loaded.FPS, DefaultFPS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("stretched")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Chain.Force.X != 5 {
		t.Errorf("expected force.x 5, got %v", cfg.Chain.Force.X)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestAllPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
