// Package config loads the RPG overlay configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Overlay holds all configuration for the RPG overlay.
type Overlay struct {
	// Economy
	StartCredits int64 `yaml:"start_credits"`

	// Timed skills
	TickIntervalMs int `yaml:"tick_interval_ms"`

	// Skill classes to enable; empty means all registered skills
	EnabledSkills []string `yaml:"enabled_skills"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultOverlay returns the overlay configuration defaults.
func DefaultOverlay() Overlay {
	return Overlay{
		StartCredits:   100,
		TickIntervalMs: 2000,
		LogLevel:       "info",
	}
}

// TickInterval returns the timed-skill interval as a duration.
func (o Overlay) TickInterval() time.Duration {
	return time.Duration(o.TickIntervalMs) * time.Millisecond
}

// SkillEnabled reports whether a skill class should be offered.
func (o Overlay) SkillEnabled(classID string) bool {
	if len(o.EnabledSkills) == 0 {
		return true
	}
	for _, id := range o.EnabledSkills {
		if id == classID {
			return true
		}
	}
	return false
}

// LoadOverlay reads the overlay config from path. A missing file yields
// the defaults.
func LoadOverlay(path string) (Overlay, error) {
	cfg := DefaultOverlay()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TickIntervalMs <= 0 {
		return cfg, fmt.Errorf("config %s: tick_interval_ms must be positive", path)
	}

	return cfg, nil
}
