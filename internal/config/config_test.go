package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/hwf/internal/grid"
	"github.com/san-kum/hwf/internal/quantum"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.State.N != 1 || cfg.State.Z != 1 {
		t.Errorf("expected ground state of hydrogen, got n=%d Z=%g", cfg.State.N, cfg.State.Z)
	}
	if !cfg.State.ReducedMass {
		t.Error("reduced mass should default on")
	}
	if cfg.Slice.Resolution != DefaultResolution {
		t.Errorf("expected resolution %d, got %d", DefaultResolution, cfg.Slice.Resolution)
	}
	if cfg.Slice.Extent != grid.DefaultExtent {
		t.Errorf("expected extent %g, got %g", grid.DefaultExtent, cfg.Slice.Extent)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwf.yaml")

	cfg := DefaultConfig()
	cfg.State = StateConfig{N: 4, L: 3, M: -2, Z: 2, ReducedMass: false}
	cfg.Slice.Mode = "constant"
	cfg.Slice.Phi0 = 0.7
	cfg.Render.Theme = "dark"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, *cfg)
	}
}

func TestLoad_PartialFileKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("state:\n  n: 3\n  l: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := DefaultConfig()
	ApplyPreset(base, FindPreset("4f1"))
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.State.N != 3 || cfg.State.L != 2 {
		t.Errorf("file values not applied: %+v", cfg.State)
	}
	if cfg.State.M != 1 || cfg.Slice.K != 1.8 {
		t.Errorf("preset values lost: m=%d k=%g", cfg.State.M, cfg.Slice.K)
	}
	if cfg.Slice.Resolution != DefaultResolution {
		t.Errorf("default resolution lost: %d", cfg.Slice.Resolution)
	}
	if base.State.N != 4 {
		t.Error("LoadOver mutated base")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("state: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"l too large", func(c *Config) { c.State.L = 1 }},
		{"negative charge", func(c *Config) { c.State.Z = -1 }},
		{"unknown nucleus", func(c *Config) { c.State.Nucleus = "Xx" }},
		{"unknown mode", func(c *Config) { c.Slice.Mode = "sphere" }},
		{"tiny grid", func(c *Config) { c.Slice.Resolution = 1 }},
		{"radial samples", func(c *Config) { c.RadialSamples = 1 }},
		{"workers", func(c *Config) { c.Workers = -2 }},
		{"theme", func(c *Config) { c.Render.Theme = "neon" }},
		{"exposure", func(c *Config) { c.Render.Exposure = -0.5 }},
		{"width", func(c *Config) { c.Render.Width = 3 }},
		{"log mode", func(c *Config) { c.Log.Mode = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, quantum.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestBuildState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.State = StateConfig{N: 2, L: 1, M: 1, Z: 1, Nucleus: "He", ReducedMass: true}

	st, err := cfg.BuildState()
	if err != nil {
		t.Fatal(err)
	}
	if st.Z() != 2 {
		t.Errorf("nucleus should set Z=2, got %g", st.Z())
	}
	if st.NuclearMass() != quantum.Nuclei["He"].Mass {
		t.Errorf("nucleus mass not applied: %g", st.NuclearMass())
	}

	cfg.State = StateConfig{N: 2, L: 0, M: 0, Z: 1, ReducedMass: false}
	st, err = cfg.BuildState()
	if err != nil {
		t.Fatal(err)
	}
	if st.AMu() != quantum.BohrRadius {
		t.Errorf("infinite mass should give a0, got %g", st.AMu())
	}
}

func TestOverrideDetachesNucleus(t *testing.T) {
	he := quantum.Nuclei["He"]
	tests := []struct {
		name     string
		override func(*Config) error
		wantZ    float64
		wantMass float64
	}{
		{"charge", func(c *Config) error { return c.SetCharge(3) }, 3, he.Mass},
		{"mass", func(c *Config) error { return c.SetNuclearMass(1e-26) }, he.Z, 1e-26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.State = StateConfig{N: 2, L: 1, M: 0, Z: 1, Nucleus: "He", ReducedMass: true}
			if err := tt.override(cfg); err != nil {
				t.Fatal(err)
			}
			if cfg.State.Nucleus != "" {
				t.Errorf("nucleus still set: %q", cfg.State.Nucleus)
			}

			st, err := cfg.BuildState()
			if err != nil {
				t.Fatal(err)
			}
			if st.Z() != tt.wantZ {
				t.Errorf("Z = %g, want %g", st.Z(), tt.wantZ)
			}
			if st.NuclearMass() != tt.wantMass {
				t.Errorf("mass = %g, want %g", st.NuclearMass(), tt.wantMass)
			}
		})
	}
}

func TestOverride_UnknownNucleus(t *testing.T) {
	cfg := DefaultConfig()
	cfg.State.Nucleus = "Xx"
	if err := cfg.SetCharge(2); !errors.Is(err, quantum.ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestBuildSlice(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Slice = SliceConfig{Mode: "constant", Phi0: 1.2, K: 1.5, Resolution: 32}

	spec, err := cfg.BuildSlice()
	if err != nil {
		t.Fatal(err)
	}
	if spec.Mode != grid.PhiConstant || spec.Phi0 != 1.2 || spec.K != 1.5 || spec.Resolution != 32 {
		t.Errorf("unexpected spec %+v", spec)
	}
}
