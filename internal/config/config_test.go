package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfigBuilds(t *testing.T) {
	cfg := DefaultConfig()
	sim := cfg.Build()

	if len(sim.Bodies) != 1 {
		t.Fatalf("expected 1 body, got %d", len(sim.Bodies))
	}
	b := sim.Bodies[0]
	if b.Mass != DefaultMass {
		t.Errorf("mass = %v", b.Mass)
	}
	if len(b.Wings) != DefaultWingCount {
		t.Errorf("wings = %d", len(b.Wings))
	}
	if b.Position.Y != DefaultSpawnAltitude {
		t.Errorf("spawn altitude = %v", b.Position.Y)
	}
	if b.Velocity.Z != DefaultForwardSpeed {
		t.Errorf("forward speed = %v", b.Velocity.Z)
	}
	if b.Propulsion == nil {
		t.Error("default config carries propulsion")
	}
	if b.Flapping != nil {
		t.Error("flapping is off by default")
	}
}

func TestPresetBuilds(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg, ok := GetPreset(name)
			if !ok {
				t.Fatalf("preset %q missing", name)
			}
			sim := cfg.Build()
			if len(sim.Bodies) != 1 {
				t.Fatalf("preset %q built %d bodies", name, len(sim.Bodies))
			}
			if sim.Bodies[0].WingArea() <= 0 {
				t.Errorf("preset %q has no wing area", name)
			}
			if cfg.Sim.Dt <= 0 || cfg.Sim.Duration <= 0 {
				t.Errorf("preset %q has invalid sim block", name)
			}
		})
	}
}

func TestGetPresetUnknown(t *testing.T) {
	if _, ok := GetPreset("nope"); ok {
		t.Error("unknown preset should not resolve")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	a, _ := GetPreset("glider")
	a.Flyer.Mass = 999
	b, _ := GetPreset("glider")
	if b.Flyer.Mass == 999 {
		t.Error("GetPreset must return a copy")
	}
}

func TestFlapperPresetFlaps(t *testing.T) {
	cfg, _ := GetPreset("flapper")
	sim := cfg.Build()
	f := sim.Bodies[0].Flapping
	if f == nil || !f.Active {
		t.Fatal("flapper preset must enable flapping")
	}
	if math.Abs(f.Frequency-2.2) > 1e-12 {
		t.Errorf("frequency = %v", f.Frequency)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.yaml")

	cfg := DefaultConfig()
	cfg.Flyer.Mass = 72.5
	cfg.Wing.Span = 5.5
	cfg.Weather.TurbulenceIntensity = 0.25
	cfg.Flapping.Enabled = true
	cfg.Flapping.Frequency = 1.8

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Flyer.Mass != 72.5 {
		t.Errorf("mass = %v", loaded.Flyer.Mass)
	}
	if loaded.Wing.Span != 5.5 {
		t.Errorf("span = %v", loaded.Wing.Span)
	}
	if loaded.Weather.TurbulenceIntensity != 0.25 {
		t.Errorf("turbulence = %v", loaded.Weather.TurbulenceIntensity)
	}
	if !loaded.Flapping.Enabled || loaded.Flapping.Frequency != 1.8 {
		t.Errorf("flapping = %+v", loaded.Flapping)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sim.Dt = 0.02
	cfg.Sim.Duration = 12
	cfg.Sim.Seed = 7

	rc := cfg.RunConfig()
	if rc.Dt != 0.02 || rc.Duration != 12 || rc.Seed != 7 {
		t.Errorf("run config = %+v", rc)
	}
	if !rc.ValidateState {
		t.Error("state validation should stay on")
	}
}
