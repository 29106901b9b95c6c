package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/chartrename/internal/model"
)

// Config holds all runtime configuration for a chartrename run.
type Config struct {
	FilePath  string // single-file commands
	Dir       string // batch and watch commands
	OutputDir string // empty: rename in place beside the source
	Format    string
	LogFormat string // "text" or "json"
	LogFile   string
	DryRun    bool

	// Reviewer overrides for the manual-correction path.
	FirstName string
	LastName  string
	ApptDate  string // MMDDYY
	DateCode  string
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`
}

// LoadFromFile merges values from a YAML config file. Values already set
// by flags win over the file's.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.OutputDir == "" {
		c.OutputDir = yc.OutputDir
	}
	if c.Format == "" {
		c.Format = yc.Format
	}
	if c.LogFormat == "" {
		c.LogFormat = yc.LogFormat
	}
	if c.LogFile == "" {
		c.LogFile = yc.LogFile
	}
	return nil
}

// FileFormat resolves the configured format name, falling back to
// appt_billing when unset or unknown. known is false only for unknown
// names, so the caller can warn.
func (c *Config) FileFormat() (format model.FileFormat, known bool) {
	if c.Format == "" {
		return model.ApptBilling, true
	}
	return model.ParseFileFormat(c.Format)
}

// Validate checks the fields required by single-file commands.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateDir checks the fields required by batch and watch commands.
func (c *Config) ValidateDir() error {
	if c.Dir == "" {
		return fmt.Errorf("--dir is required")
	}
	info, err := os.Stat(c.Dir)
	if err != nil {
		return fmt.Errorf("directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", c.Dir)
	}
	return nil
}

// Override builds the reviewer-corrected PatientInfo from the override
// flags, or nil when none were given. A corrected record carries
// confidence 1.0 so it passes the review gate.
func (c *Config) Override() (*model.PatientInfo, error) {
	if c.FirstName == "" && c.LastName == "" && c.ApptDate == "" && c.DateCode == "" {
		return nil, nil
	}
	if c.FirstName == "" || c.LastName == "" {
		return nil, fmt.Errorf("manual override requires both --first and --last")
	}

	info := &model.PatientInfo{
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		DateCode:   c.DateCode,
		Confidence: 1.0,
	}
	if c.ApptDate != "" {
		t, err := time.Parse("010206", c.ApptDate)
		if err != nil {
			return nil, fmt.Errorf("--date must be MMDDYY: %w", err)
		}
		info.AppointmentDate = &t
	}
	if info.AppointmentDate == nil && info.DateCode == "" {
		return nil, fmt.Errorf("manual override requires --date or --date-code")
	}
	return info, nil
}
