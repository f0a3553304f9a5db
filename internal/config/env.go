package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with any HWF_* variable that is set. Unset
// variables leave the current value alone.
func ApplyEnv(cfg *Config) error {
	return ParseEnv(cfg)
}
