package config

import (
	"github.com/pmi-sydney/pmdos-match/internal/assign"
)

// Config represents the application configuration
type Config struct {
	Input    InputConfig    `toml:"input"`
	Matching MatchingConfig `toml:"matching"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
}

// InputConfig locates the survey export files. Explicit file paths win;
// when they are empty the run command discovers the newest matching
// export in Dir.
type InputConfig struct {
	Dir           string `toml:"dir"`
	VolunteerFile string `toml:"volunteer_file"`
	ProjectFile   string `toml:"project_file"`
}

// MatchingConfig contains assignment policy settings
type MatchingConfig struct {
	Policy              string `toml:"policy"`
	FixedCapacity       int    `toml:"fixed_capacity"`
	FlexibleMaxCapacity int    `toml:"flexible_max_capacity"`
	EmployerDiversity   bool   `toml:"employer_diversity"`
}

// Options converts the matching section to assignment options.
func (m MatchingConfig) Options() assign.Options {
	return assign.Options{
		FixedCapacity:            m.FixedCapacity,
		FlexibleMaxCapacity:      m.FlexibleMaxCapacity,
		EnforceEmployerDiversity: m.EmployerDiversity,
	}.Normalize()
}

// CatalogConfig optionally overrides the built-in skill catalog
type CatalogConfig struct {
	Path string `toml:"path"`
}

// DatabaseConfig contains run history database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	JSON  bool `toml:"json"`
	Debug bool `toml:"debug"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir: ".",
		},
		Matching: MatchingConfig{
			Policy:              string(assign.PolicyFlexible),
			FixedCapacity:       2,
			FlexibleMaxCapacity: 4,
			EmployerDiversity:   true,
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/pmdos-match/history.db",
		},
	}
}
