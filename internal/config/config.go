// Package config provides configuration loading and validation for the CLI
// and server.
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
	// Inputs
	Resume    string `json:"resume,omitempty"`     // Path to resume text file
	ResumeURL string `json:"resume_url,omitempty"` // URL to fetch resume from
	Job       string `json:"job,omitempty"`        // Path to job posting text file
	JobURL    string `json:"job_url,omitempty"`    // URL to fetch job posting from

	// Salary expectations, loosely formatted ("95000", "$95,000")
	SalaryMin     string `json:"salary_min,omitempty"`      // Candidate minimum
	SalaryMax     string `json:"salary_max,omitempty"`      // Candidate maximum
	RoleSalaryMin string `json:"role_salary_min,omitempty"` // Posted role minimum
	RoleSalaryMax string `json:"role_salary_max,omitempty"` // Posted role maximum

	// Behavior
	APIKey      string  `json:"api_key,omitempty"`      // Gemini API key; empty selects the heuristic path
	ScoreWeight float64 `json:"score_weight,omitempty"` // Weight of category match vs compensation (0.0-1.0 exclusive)
	Verbose     bool    `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string  `json:"database_url,omitempty"` // PostgreSQL connection URL for analysis history
	Port        int     `json:"port,omitempty"`         // HTTP server port
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
// Required-field checks are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Resume != "" && c.ResumeURL != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_url' are mutually exclusive")
	}
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.ScoreWeight != 0 && (c.ScoreWeight <= 0 || c.ScoreWeight >= 1) {
		return fmt.Errorf("config error: 'score_weight' must be between 0 and 1 exclusive")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ResumeURL == "" {
		result.ResumeURL = defaults.ResumeURL
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.SalaryMin == "" {
		result.SalaryMin = defaults.SalaryMin
	}
	if result.SalaryMax == "" {
		result.SalaryMax = defaults.SalaryMax
	}
	if result.RoleSalaryMin == "" {
		result.RoleSalaryMin = defaults.RoleSalaryMin
	}
	if result.RoleSalaryMax == "" {
		result.RoleSalaryMax = defaults.RoleSalaryMax
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}

	if result.ScoreWeight == 0 {
		if defaults.ScoreWeight > 0 {
			result.ScoreWeight = defaults.ScoreWeight
		} else {
			result.ScoreWeight = 0.8 // Default to 80% category match
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
