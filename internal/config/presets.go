package config

import (
	"sort"
	"strings"
)

func preset(n, l, m int, k float64) *Config {
	return &Config{
		State: StateConfig{N: n, L: l, M: m},
		Slice: SliceConfig{K: k},
	}
}

// Presets holds the demo states keyed by subshell, each with the framing
// factor that fits its outermost lobe.
var Presets = map[string]map[string]*Config{
	"s": {
		"2s": preset(2, 0, 0, 0.3),
		"3s": preset(3, 0, 0, 0.25),
		"4s": preset(4, 0, 0, 0.3),
	},
	"p": {
		"2p0": preset(2, 1, 0, 1.8),
		"2p1": preset(2, 1, 1, 1.8),
		"3p0": preset(3, 1, 0, 1.5),
		"3p1": preset(3, 1, 1, 1.5),
		"4p0": preset(4, 1, 0, 1.5),
		"4p1": preset(4, 1, 1, 1.5),
	},
	"d": {
		"3d0": preset(3, 2, 0, 1.8),
		"3d1": preset(3, 2, 1, 1.8),
		"3d2": preset(3, 2, 2, 1.8),
		"4d0": preset(4, 2, 0, 1.8),
		"4d1": preset(4, 2, 1, 1.5),
		"4d2": preset(4, 2, 2, 1.8),
	},
	"f": {
		"4f0": preset(4, 3, 0, 1.8),
		"4f1": preset(4, 3, 1, 1.8),
		"4f2": preset(4, 3, 2, 1.8),
		"4f3": preset(4, 3, 3, 1.8),
	},
}

func GetPreset(shell, name string) *Config {
	shellPresets, ok := Presets[shell]
	if !ok {
		return nil
	}
	cfg, ok := shellPresets[name]
	if !ok {
		return nil
	}
	return cfg
}

// FindPreset looks a preset up by name alone; the subshell is the letter
// after the leading n ("3d1" → "d").
func FindPreset(name string) *Config {
	shell := strings.TrimLeft(name, "0123456789")
	if shell == "" {
		return nil
	}
	return GetPreset(shell[:1], name)
}

func ListPresets(shell string) []string {
	shellPresets, ok := Presets[shell]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(shellPresets))
	for name := range shellPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shells returns the subshell keys in spectroscopic order.
func Shells() []string {
	order := "spdfghik"
	shells := make([]string, 0, len(Presets))
	for shell := range Presets {
		shells = append(shells, shell)
	}
	sort.Slice(shells, func(i, j int) bool {
		return strings.Index(order, shells[i]) < strings.Index(order, shells[j])
	})
	return shells
}

// ApplyPreset copies the preset's state and framing onto cfg. Charge,
// mass and rendering settings are left alone.
func ApplyPreset(cfg, p *Config) {
	cfg.State.N = p.State.N
	cfg.State.L = p.State.L
	cfg.State.M = p.State.M
	cfg.Slice.K = p.Slice.K
}
