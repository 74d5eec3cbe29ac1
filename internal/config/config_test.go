package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Matching.Policy != "flexible" {
		t.Errorf("expected Policy=flexible, got %s", cfg.Matching.Policy)
	}

	if cfg.Matching.FixedCapacity != 2 {
		t.Errorf("expected FixedCapacity=2, got %d", cfg.Matching.FixedCapacity)
	}

	if cfg.Matching.FlexibleMaxCapacity != 4 {
		t.Errorf("expected FlexibleMaxCapacity=4, got %d", cfg.Matching.FlexibleMaxCapacity)
	}

	if !cfg.Matching.EmployerDiversity {
		t.Error("expected EmployerDiversity=true")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "invalid policy",
			modify: func(c *Config) {
				c.Matching.Policy = "random"
			},
			wantErr: true,
		},
		{
			name: "invalid fixed capacity",
			modify: func(c *Config) {
				c.Matching.FixedCapacity = 0
			},
			wantErr: true,
		},
		{
			name: "flexible max below team floor",
			modify: func(c *Config) {
				c.Matching.FlexibleMaxCapacity = 1
			},
			wantErr: true,
		},
		{
			name: "missing input dir without explicit files",
			modify: func(c *Config) {
				c.Input.Dir = ""
			},
			wantErr: true,
		},
		{
			name: "explicit files allow empty dir",
			modify: func(c *Config) {
				c.Input.Dir = ""
				c.Input.VolunteerFile = "volunteers.csv"
				c.Input.ProjectFile = "projects.csv"
			},
			wantErr: false,
		},
		{
			name: "missing database path",
			modify: func(c *Config) {
				c.Database.Path = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[input]
dir = "./exports"

[matching]
policy = "fixed"
fixed_capacity = 3

[database]
path = "` + filepath.Join(dir, "history.db") + `"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Matching.Policy != "fixed" || cfg.Matching.FixedCapacity != 3 {
		t.Errorf("matching = %+v", cfg.Matching)
	}
	// Unset fields keep defaults.
	if cfg.Matching.FlexibleMaxCapacity != 4 {
		t.Errorf("FlexibleMaxCapacity = %d, want default 4", cfg.Matching.FlexibleMaxCapacity)
	}

	opts := cfg.Matching.Options()
	if opts.FixedCapacity != 3 {
		t.Errorf("Options().FixedCapacity = %d", opts.FixedCapacity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
