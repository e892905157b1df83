package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete tool configuration. Every field has a
// working default; a config file is only needed to deviate from them.
type Config struct {
	Events  EventsConfig  `json:"events" yaml:"events"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// EventsConfig locates the timeline export.
type EventsConfig struct {
	File string `json:"file" yaml:"file"`
}

// ReportConfig names the CSV artifacts per accounting method.
type ReportConfig struct {
	AvgcostPrefix string `json:"avgcost_prefix" yaml:"avgcost_prefix"`
	FIFOPrefix    string `json:"fifo_prefix" yaml:"fifo_prefix"`
}

// JournalConfig selects where per-sale results are persisted beyond the
// CSV artifact.
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "csv" or "sqlite"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON; YAML is
// tried first). Unset fields keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Events.File == "" {
		return fmt.Errorf("events.file is required")
	}
	if c.Report.AvgcostPrefix == "" || c.Report.FIFOPrefix == "" {
		return fmt.Errorf("report prefixes are required")
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Events: EventsConfig{
			File: "all_events.json",
		},
		Report: ReportConfig{
			AvgcostPrefix: "kest",
			FIFOPrefix:    "verlusttopf",
		},
		Journal: JournalConfig{
			Type: "csv",
		},
	}
}
