package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/pmi-sydney/pmdos-match/internal/assign"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'pmdos-match config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand paths in config
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config file when it exists and falls back to
// the defaults when it does not, so the tool runs without any setup.
func LoadOrDefault(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.expandPaths(); err != nil {
			return nil, fmt.Errorf("failed to expand paths: %w", err)
		}
		return cfg, nil
	}

	return Load(path)
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Input.Dir, err = expandPath(c.Input.Dir)
	if err != nil {
		return err
	}

	c.Input.VolunteerFile, err = expandPath(c.Input.VolunteerFile)
	if err != nil {
		return err
	}

	c.Input.ProjectFile, err = expandPath(c.Input.ProjectFile)
	if err != nil {
		return err
	}

	c.Catalog.Path, err = expandPath(c.Catalog.Path)
	if err != nil {
		return err
	}

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Input validation
	if c.Input.Dir == "" && (c.Input.VolunteerFile == "" || c.Input.ProjectFile == "") {
		errs = append(errs, errors.New("input.dir is required when explicit roster files are not set"))
	}

	// Matching validation
	switch assign.Policy(c.Matching.Policy) {
	case assign.PolicyFixed, assign.PolicyFlexible:
	default:
		errs = append(errs, fmt.Errorf("matching.policy must be 'fixed' or 'flexible', got '%s'", c.Matching.Policy))
	}
	if c.Matching.FixedCapacity < 1 {
		errs = append(errs, errors.New("matching.fixed_capacity must be at least 1"))
	}
	if c.Matching.FlexibleMaxCapacity < 2 {
		errs = append(errs, errors.New("matching.flexible_max_capacity must be at least 2"))
	}

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for the history database
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(filepath.Dir(c.Database.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(c.Database.Path), err)
	}
	return nil
}
