// Package config loads the ini-format bot configuration named in spec.md
// section 6: [group] supervisors, [ans] bot aliases, station host/port and
// database roots. ini.v1 parses the file into this struct tree; envconfig
// then lets every value be overridden by an environment variable, the same
// two-layer pattern KafClaw's config package uses.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/ini.v1"
)

// StationConfig groups the station's own network identity.
type StationConfig struct {
	Host string `ini:"host" envconfig:"STATION_HOST"`
	Port int    `ini:"port" envconfig:"STATION_PORT"`
}

// DatabaseConfig groups the filesystem roots for sqlite databases and the
// active-users flat file (spec.md section 6).
type DatabaseConfig struct {
	Root          string `ini:"root" envconfig:"DATABASE_ROOT"`
	ProtectedRoot string `ini:"protected_root" envconfig:"DATABASE_PROTECTED_ROOT"`
}

// GroupConfig names the administrators allowed to manage groups out-of-band
// (spec.md section 6: "[group] supervisors = list of admin IDs").
type GroupConfig struct {
	Supervisors []string `ini:"supervisors" delim:"," envconfig:"GROUP_SUPERVISORS"`
}

// Config is the root configuration struct, one ini section per field group.
// Ans is handled separately (see Ans()) since its keys are dynamic bot alias
// names, not a fixed struct shape.
type Config struct {
	Station       StationConfig  `ini:"station"`
	Database      DatabaseConfig `ini:"database"`
	Group         GroupConfig    `ini:"group"`
	QueueCapacity int            `ini:"queue_capacity" envconfig:"QUEUE_CAPACITY"`

	ans map[string]string
}

// Ans returns the bot ID configured under [ans] for alias, e.g. "assistant"
// or "usher" (spec.md section 6: "[ans] <botAliasName> = bot ID").
func (c *Config) Ans(alias string) (string, bool) {
	id, ok := c.ans[alias]
	return id, ok
}

// Load parses path as ini, applies environment overrides via envconfig, and
// returns the populated Config.
func Load(path string) (*Config, error) {
	cfg := &Config{QueueCapacity: 1 << 16}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := file.MapTo(cfg); err != nil {
		return nil, fmt.Errorf("config: map ini sections: %w", err)
	}

	cfg.ans = make(map[string]string)
	if ansSection, err := file.GetSection("ans"); err == nil {
		for _, key := range ansSection.Keys() {
			cfg.ans[key.Name()] = key.Value()
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: apply environment overrides: %w", err)
	}
	return cfg, nil
}
