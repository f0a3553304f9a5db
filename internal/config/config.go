package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hwf/internal/grid"
	"github.com/san-kum/hwf/internal/quantum"
)

const (
	DefaultResolution    = 600
	DefaultRadialSamples = 1000
	DefaultTheme         = "light"
	DefaultLogMode       = "prod"
	DefaultWidth         = 72
)

type Config struct {
	State         StateConfig  `yaml:"state"`
	Slice         SliceConfig  `yaml:"slice"`
	RadialSamples int          `yaml:"radial_samples" env:"HWF_RADIAL_SAMPLES"`
	Workers       int          `yaml:"workers" env:"HWF_WORKERS"`
	Render        RenderConfig `yaml:"render"`
	Log           LogConfig    `yaml:"log"`
}

type StateConfig struct {
	N           int     `yaml:"n"`
	L           int     `yaml:"l"`
	M           int     `yaml:"m"`
	Z           float64 `yaml:"z"`
	Nucleus     string  `yaml:"nucleus,omitempty"`
	NuclearMass float64 `yaml:"nuclear_mass,omitempty"`
	ReducedMass bool    `yaml:"reduced_mass"`
}

type SliceConfig struct {
	Mode       string  `yaml:"mode"`
	Phi0       float64 `yaml:"phi0"`
	K          float64 `yaml:"k"`
	Extent     float64 `yaml:"extent"`
	Resolution int     `yaml:"resolution"`
}

type RenderConfig struct {
	Theme    string  `yaml:"theme" env:"HWF_THEME"`
	Exposure float64 `yaml:"exposure" env:"HWF_EXPOSURE"`
	Width    int     `yaml:"width"`
}

type LogConfig struct {
	Mode string `yaml:"mode" env:"HWF_LOG_MODE"`
}

func DefaultConfig() *Config {
	return &Config{
		State: StateConfig{
			N:           1,
			Z:           1,
			ReducedMass: true,
		},
		Slice: SliceConfig{
			Mode:       grid.PhiPlane.String(),
			Extent:     grid.DefaultExtent,
			Resolution: DefaultResolution,
		},
		RadialSamples: DefaultRadialSamples,
		Render: RenderConfig{
			Theme: DefaultTheme,
			Width: DefaultWidth,
		},
		Log: LogConfig{Mode: DefaultLogMode},
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a yaml file over a copy of base. Keys absent from the file
// keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks everything that can be checked without building the state.
func (c *Config) Validate() error {
	if _, err := c.BuildState(); err != nil {
		return err
	}
	if _, err := c.BuildSlice(); err != nil {
		return err
	}
	if c.RadialSamples < 2 {
		return fmt.Errorf("%w: radial_samples=%d: need at least 2", quantum.ErrInvalidParameter, c.RadialSamples)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d: must be >= 0", quantum.ErrInvalidParameter, c.Workers)
	}
	if c.Render.Theme != "light" && c.Render.Theme != "dark" {
		return fmt.Errorf("%w: theme %q (want light or dark)", quantum.ErrInvalidParameter, c.Render.Theme)
	}
	if !(c.Render.Exposure >= 0) {
		return fmt.Errorf("%w: exposure=%g: must be >= 0", quantum.ErrInvalidParameter, c.Render.Exposure)
	}
	if c.Render.Width < 8 {
		return fmt.Errorf("%w: width=%d: must be >= 8", quantum.ErrInvalidParameter, c.Render.Width)
	}
	if c.Log.Mode != "dev" && c.Log.Mode != "prod" {
		return fmt.Errorf("%w: log mode %q (want dev or prod)", quantum.ErrInvalidParameter, c.Log.Mode)
	}
	return nil
}

// BuildState converts the state section into a validated quantum.State.
// A named nucleus sets both Z and M and wins over explicit values.
func (c *Config) BuildState() (quantum.State, error) {
	s := c.State
	opts := []quantum.Option{quantum.WithCharge(s.Z)}
	switch {
	case s.Nucleus != "":
		nuc, err := quantum.LookupNucleus(s.Nucleus)
		if err != nil {
			return quantum.State{}, err
		}
		opts = append(opts, quantum.WithNucleus(nuc))
	case s.NuclearMass != 0:
		opts = append(opts, quantum.WithNuclearMass(s.NuclearMass))
	}
	if !s.ReducedMass {
		opts = append(opts, quantum.WithoutReducedMass())
	}
	return quantum.NewState(s.N, s.L, s.M, opts...)
}

// SetCharge overrides Z. A named nucleus is first expanded into explicit
// Z and M, so its mass survives and the new charge is not shadowed.
func (c *Config) SetCharge(z float64) error {
	if err := c.detachNucleus(); err != nil {
		return err
	}
	c.State.Z = z
	return nil
}

// SetNuclearMass overrides M the same way SetCharge overrides Z.
func (c *Config) SetNuclearMass(mass float64) error {
	if err := c.detachNucleus(); err != nil {
		return err
	}
	c.State.NuclearMass = mass
	return nil
}

func (c *Config) detachNucleus() error {
	if c.State.Nucleus == "" {
		return nil
	}
	nuc, err := quantum.LookupNucleus(c.State.Nucleus)
	if err != nil {
		return err
	}
	c.State.Z = nuc.Z
	c.State.NuclearMass = nuc.Mass
	c.State.Nucleus = ""
	return nil
}

// BuildSlice converts the slice section into a validated grid.SliceSpec.
func (c *Config) BuildSlice() (grid.SliceSpec, error) {
	mode, err := grid.ParsePhiMode(c.Slice.Mode)
	if err != nil {
		return grid.SliceSpec{}, err
	}
	return grid.NewSliceSpec(mode, c.Slice.Phi0, c.Slice.K, c.Slice.Extent, c.Slice.Resolution)
}
