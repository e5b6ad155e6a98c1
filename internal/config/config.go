// Package config holds the settings the publications sync runs from:
// compiled-in defaults, an optional YAML override file, and environment
// overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the single bundle of settings passed through the pipeline, so
// tests can override the cutoff year or page size without touching network
// code. The zero value is not usable; start from Default.
type Config struct {
	BaseURL     string `yaml:"base_url"`     // Scholar origin, no trailing slash
	User        string `yaml:"user"`         // profile user ID
	CutoffYear  int    `yaml:"cutoff_year"`  // keep publications from this year on
	PageSize    int    `yaml:"page_size"`    // listing rows requested per page
	ChunkSize   int    `yaml:"chunk_size"`   // publication cards per rendered row
	MarkerStart string `yaml:"marker_start"` // literal opening the generated block
	MarkerEnd   string `yaml:"marker_end"`   // literal closing the generated block
	Anchor      string `yaml:"anchor"`       // insertion point when no markers exist yet
	Target      string `yaml:"target"`       // path of the HTML file to rewrite
}

// Default returns the configuration the tool normally runs with.
func Default() Config {
	return Config{
		BaseURL:     "https://scholar.google.com",
		User:        "O8wbTncAAAAJ",
		CutoffYear:  2018,
		PageSize:    20,
		ChunkSize:   3,
		MarkerStart: "<!-- AUTO-GENERATED PUBLICATIONS START -->",
		MarkerEnd:   "<!-- AUTO-GENERATED PUBLICATIONS END -->",
		Anchor:      `  <div class="bigtitle">2017</div>`,
		Target:      "papers/index.html",
	}
}

// Load returns Default overlaid with the YAML file at path and validated.
// An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv applies environment overrides. SCHOLAR_USER replaces the profile
// user ID.
func (c *Config) FromEnv() {
	if user := os.Getenv("SCHOLAR_USER"); user != "" {
		c.User = user
	}
}

// Validate checks that every setting the pipeline depends on is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.User == "" {
		return fmt.Errorf("user must not be empty")
	}
	if c.CutoffYear < 1000 || c.CutoffYear > 9999 {
		return fmt.Errorf("cutoff_year must be a 4-digit year, got %d", c.CutoffYear)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be at least 1, got %d", c.ChunkSize)
	}
	if c.MarkerStart == "" || c.MarkerEnd == "" {
		return fmt.Errorf("marker_start and marker_end must not be empty")
	}
	if c.MarkerStart == c.MarkerEnd {
		return fmt.Errorf("marker_start and marker_end must differ")
	}
	if c.Anchor == "" {
		return fmt.Errorf("anchor must not be empty")
	}
	if c.Target == "" {
		return fmt.Errorf("target must not be empty")
	}
	return nil
}
