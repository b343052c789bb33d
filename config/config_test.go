package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 8.0, cfg.Capital.ULMultiplier)
	assert.Equal(t, "csv", cfg.Journal.Type)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative_ftp",
			mutate:  func(c *Config) { c.Pricing.FTPRate = -0.01 },
			wantErr: "ftp_rate",
		},
		{
			name:    "discount_at_floor",
			mutate:  func(c *Config) { c.Pricing.DiscountRate = -1 },
			wantErr: "discount_rate",
		},
		{
			name:    "zero_multiplier",
			mutate:  func(c *Config) { c.Capital.ULMultiplier = 0 },
			wantErr: "ul_multiplier",
		},
		{
			name:    "negative_workers",
			mutate:  func(c *Config) { c.Batch.Workers = -1 },
			wantErr: "workers",
		},
		{
			name:    "bad_journal_type",
			mutate:  func(c *Config) { c.Journal.Type = "postgres" },
			wantErr: "journal.type",
		},
		{
			name:    "csv_without_results_file",
			mutate:  func(c *Config) { c.Journal.ResultsFile = "" },
			wantErr: "results_file",
		},
		{
			name: "schedules_without_file",
			mutate: func(c *Config) {
				c.Journal.Schedules = true
				c.Journal.SchedulesFile = ""
			},
			wantErr: "schedules_file",
		},
		{
			name: "sqlite_without_db_path",
			mutate: func(c *Config) {
				c.Journal.Type = "sqlite"
				c.Journal.DBPath = ""
			},
			wantErr: "db_path",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSaveLoadRoundTripYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pricing.yaml")

	cfg := Default()
	cfg.Pricing.FTPRate = 0.031
	cfg.Fees.NonInterestIncome = 100
	cfg.Fees.NIIMonths = 50
	cfg.Batch.Workers = 4

	assert.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveLoadRoundTripJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pricing.json")

	cfg := Default()
	cfg.Journal.Type = "sqlite"
	cfg.Journal.ResultsFile = ""
	cfg.Journal.DBPath = "./pricing.db"

	assert.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadInvalidConfigFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := "pricing:\n  ftp_rate: -0.5\njournal:\n  type: csv\n  results_file: out.csv\ncapital:\n  ul_multiplier: 8\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}
