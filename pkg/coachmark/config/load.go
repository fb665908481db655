package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML style file. Keys that are absent keep their Default
// values.
//
//	arrow_direction = "bottom"
//	spotlight_padding = 12
//	transition_duration = "300ms"
//	next_label = "Continue"
func Load(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to read coachmark config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Configuration{}, fmt.Errorf("invalid coachmark config in %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over Default and validates the result.
func Parse(data []byte) (Configuration, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Configuration{}, fmt.Errorf("unknown keys: %v", undecoded)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// applyDefaults fills fields whose zero value is never meaningful.
func applyDefaults(cfg *Configuration) {
	if cfg.ArrowDirection == "" {
		cfg.ArrowDirection = DirectionAutomatic
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
}
