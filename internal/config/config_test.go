package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration must validate: %v", err)
	}
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubsync.yml")
	content := "user: abc123\ncutoff_year: 2020\npage_size: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.User != "abc123" {
		t.Errorf("expected user override, got %q", cfg.User)
	}
	if cfg.CutoffYear != 2020 {
		t.Errorf("expected cutoff_year override, got %d", cfg.CutoffYear)
	}
	if cfg.PageSize != 10 {
		t.Errorf("expected page_size override, got %d", cfg.PageSize)
	}
	// Untouched fields keep their defaults.
	if cfg.ChunkSize != Default().ChunkSize {
		t.Errorf("chunk_size should keep its default, got %d", cfg.ChunkSize)
	}
	if cfg.Target != Default().Target {
		t.Errorf("target should keep its default, got %q", cfg.Target)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	if err := os.WriteFile(path, []byte("user: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty base URL", func(c *Config) { c.BaseURL = "" }, "base_url"},
		{"empty user", func(c *Config) { c.User = "" }, "user"},
		{"three-digit cutoff", func(c *Config) { c.CutoffYear = 218 }, "cutoff_year"},
		{"five-digit cutoff", func(c *Config) { c.CutoffYear = 20180 }, "cutoff_year"},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, "page_size"},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, "chunk_size"},
		{"empty start marker", func(c *Config) { c.MarkerStart = "" }, "marker_start"},
		{"identical markers", func(c *Config) { c.MarkerEnd = c.MarkerStart }, "must differ"},
		{"empty anchor", func(c *Config) { c.Anchor = "" }, "anchor"},
		{"empty target", func(c *Config) { c.Target = "" }, "target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestFromEnv_OverridesUser(t *testing.T) {
	t.Setenv("SCHOLAR_USER", "env-user")

	cfg := Default()
	cfg.FromEnv()

	if cfg.User != "env-user" {
		t.Errorf("expected SCHOLAR_USER override, got %q", cfg.User)
	}
}

func TestFromEnv_EmptyEnvKeepsDefault(t *testing.T) {
	t.Setenv("SCHOLAR_USER", "")

	cfg := Default()
	cfg.FromEnv()

	if cfg.User != Default().User {
		t.Errorf("empty env var must not clear the user, got %q", cfg.User)
	}
}
