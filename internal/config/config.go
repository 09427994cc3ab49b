// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the analyzer configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must
// be provided via CLI flags.
type Config struct {
	// Paths
	Courses  string `json:"courses,omitempty"`  // Path to the course corpus CSV
	Taxonomy string `json:"taxonomy,omitempty"` // Path to a role taxonomy JSON (empty uses the built-in table)

	// Limits
	TopRoles   int `json:"top_roles,omitempty"`   // How many predicted roles get a gap report
	TopCourses int `json:"top_courses,omitempty"` // How many courses to recommend per role

	// Server
	Port              int    `json:"port,omitempty"`                // HTTP listen port
	DatabaseURL       string `json:"database_url,omitempty"`        // PostgreSQL connection URL for session persistence
	SessionTTLMinutes int    `json:"session_ttl_minutes,omitempty"` // Minutes before a stored session expires

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TopRoles < 0 {
		return fmt.Errorf("config error: 'top_roles' must be non-negative")
	}
	if c.TopCourses < 0 {
		return fmt.Errorf("config error: 'top_courses' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.SessionTTLMinutes < 0 {
		return fmt.Errorf("config error: 'session_ttl_minutes' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Courses != "" {
		if _, err := os.Stat(c.Courses); os.IsNotExist(err) {
			return fmt.Errorf("config error: course corpus not found: %s", c.Courses)
		}
	}
	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Courses == "" {
		result.Courses = defaults.Courses
	}
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.TopRoles == 0 {
		result.TopRoles = defaults.TopRoles
	}
	if result.TopCourses == 0 {
		result.TopCourses = defaults.TopCourses
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SessionTTLMinutes == 0 {
		result.SessionTTLMinutes = defaults.SessionTTLMinutes
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
