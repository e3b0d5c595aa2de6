package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"kidslearn/internal/content"
)

// Config holds the runtime settings, all overridable from the environment.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `env:"KIDSLEARN_DB"`

	// Total is the question count per session.
	Total int `env:"KIDSLEARN_TOTAL" envDefault:"10"`

	// Level is the starting math difficulty (1-3).
	Level int `env:"KIDSLEARN_LEVEL" envDefault:"1"`

	// Age is the starting content age band.
	Age string `env:"KIDSLEARN_AGE" envDefault:"6-8"`
}

// Load parses the environment and validates ranges.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Total < 1 {
		return Config{}, fmt.Errorf("KIDSLEARN_TOTAL must be at least 1, got %d", cfg.Total)
	}
	if cfg.Level < 1 || cfg.Level > 3 {
		return Config{}, fmt.Errorf("KIDSLEARN_LEVEL must be 1-3, got %d", cfg.Level)
	}
	if !validAge(cfg.Age) {
		return Config{}, fmt.Errorf("KIDSLEARN_AGE must be one of %v, got %q", content.AgeTags, cfg.Age)
	}
	return cfg, nil
}

// AgeTag returns the configured age band as a content tag.
func (c Config) AgeTag() content.AgeTag {
	return content.AgeTag(c.Age)
}

func validAge(age string) bool {
	for _, tag := range content.AgeTags {
		if string(tag) == age {
			return true
		}
	}
	return false
}
