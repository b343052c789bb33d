package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete pricing-run configuration
type Config struct {
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`
	Capital CapitalConfig `json:"capital" yaml:"capital"`
	Fees    FeesConfig    `json:"fees" yaml:"fees"`
	Batch   BatchConfig   `json:"batch" yaml:"batch"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// PricingConfig holds the run-wide rate assumptions. All rates are
// annual fractions (0.023 = 2.3%); individual records may override
// them per row.
type PricingConfig struct {
	FTPRate      float64 `json:"ftp_rate" yaml:"ftp_rate"`
	DiscountRate float64 `json:"discount_rate" yaml:"discount_rate"`

	// DiscountFromZero values the first cash flow at period 0 instead
	// of period 1.
	DiscountFromZero bool `json:"discount_from_zero,omitempty" yaml:"discount_from_zero,omitempty"`
}

// CapitalConfig tunes the economic-capital sizing.
type CapitalConfig struct {
	ULMultiplier float64 `json:"ul_multiplier" yaml:"ul_multiplier"`
}

// FeesConfig sets default non-interest income/expense for records
// that do not carry their own.
type FeesConfig struct {
	NonInterestIncome  float64 `json:"non_interest_income,omitempty" yaml:"non_interest_income,omitempty"`
	NIIMonths          int     `json:"nii_months,omitempty" yaml:"nii_months,omitempty"`
	NonInterestExpense float64 `json:"non_interest_expense,omitempty" yaml:"non_interest_expense,omitempty"`
}

// BatchConfig contains batch-execution parameters
type BatchConfig struct {
	// Workers caps concurrent evaluations; 0 means one per CPU.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// JournalConfig contains output parameters
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "csv" or "sqlite"
	ResultsFile   string `json:"results_file,omitempty" yaml:"results_file,omitempty"`
	SchedulesFile string `json:"schedules_file,omitempty" yaml:"schedules_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`

	// Schedules writes the full amortization detail per loan, not just
	// the one-line result.
	Schedules bool `json:"schedules,omitempty" yaml:"schedules,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

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

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
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
	if c.Pricing.FTPRate < 0 {
		return fmt.Errorf("pricing.ftp_rate must not be negative")
	}
	if c.Pricing.DiscountRate <= -1 {
		return fmt.Errorf("pricing.discount_rate must be greater than -1")
	}
	if c.Capital.ULMultiplier <= 0 {
		return fmt.Errorf("capital.ul_multiplier must be positive")
	}
	if c.Fees.NIIMonths < 0 {
		return fmt.Errorf("fees.nii_months must not be negative")
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative")
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && c.Journal.ResultsFile == "" {
		return fmt.Errorf("journal results_file required for CSV type")
	}
	if c.Journal.Type == "csv" && c.Journal.Schedules && c.Journal.SchedulesFile == "" {
		return fmt.Errorf("journal schedules_file required when schedules output is enabled")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Pricing: PricingConfig{
			FTPRate:      0.023,
			DiscountRate: 0.025,
		},
		Capital: CapitalConfig{
			ULMultiplier: 8.0,
		},
		Journal: JournalConfig{
			Type:        "csv",
			ResultsFile: "./results.csv",
		},
	}
}
