package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration loaded from a YAML file.
// Backend selection is pure configuration: resolved once at startup,
// never switched at runtime.
type Config struct {
	Env               string                  `yaml:"env"`
	Database          DatabaseConfig          `yaml:"database"`
	CustomerMaster    CustomerMasterConfig    `yaml:"customer_master"`
	CustomFieldSearch CustomFieldSearchConfig `yaml:"custom_field_search"`
}

// DatabaseConfig selects the backend kind and holds per-backend settings
// for the three logical stores (master / history / customer).
type DatabaseConfig struct {
	Type      string          `yaml:"type"`
	SQLite    FileStorePaths  `yaml:"sqlite"`
	SQLServer SQLServerConfig `yaml:"sqlserver"`
	Access    FileStorePaths  `yaml:"access"`
}

// FileStorePaths holds database file paths for file-based backends.
// Relative paths are resolved against the application base directory.
type FileStorePaths struct {
	MasterPath   string `yaml:"master_path"`
	HistoryPath  string `yaml:"history_path"`
	CustomerPath string `yaml:"customer_path"`
}

// SQLServerConfig holds one DSN per logical store.
type SQLServerConfig struct {
	MasterDSN   string `yaml:"master_dsn"`
	HistoryDSN  string `yaml:"history_dsn"`
	CustomerDSN string `yaml:"customer_dsn"`
}

// CustomerMasterConfig describes the externally-owned customer table.
// The schema is not managed by this system; only the key column and the
// searchable columns are known, and only through this configuration.
type CustomerMasterConfig struct {
	Enabled       bool           `yaml:"enabled"`
	TableName     string         `yaml:"table_name"`
	KeyColumn     string         `yaml:"key_column"`
	SearchColumns []SearchColumn `yaml:"search_columns"`
}

// SearchColumn is one searchable column of the customer table.
// Match is "exact" or "partial" (substring).
type SearchColumn struct {
	Column string `yaml:"column"`
	Label  string `yaml:"label"`
	Match  string `yaml:"match"`
}

// CustomFieldSearchConfig toggles custom-column conditions on inquiry search.
type CustomFieldSearchConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoadDotEnv reads .env.local and then .env from the working directory,
// returning the files it found. Variables already present in the process
// environment are never overridden, so the OS environment always wins and
// .env.local takes precedence over .env.
func LoadDotEnv() []string {
	var loaded []string
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if godotenv.Load(name) == nil {
			loaded = append(loaded, name)
		}
	}
	return loaded
}

// Load reads and parses the YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// APP_ENV wins over the file value
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Env = env
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		Database: DatabaseConfig{
			Type: "sqlite",
			SQLite: FileStorePaths{
				MasterPath:   "data/master.db",
				HistoryPath:  "data/history.db",
				CustomerPath: "data/customer.db",
			},
		},
		CustomerMaster: CustomerMasterConfig{
			Enabled:   true,
			TableName: "T_Customer",
			KeyColumn: "CustomerID",
			SearchColumns: []SearchColumn{
				{Column: "CustomerID", Label: "顧客ID", Match: "partial"},
				{Column: "customer_name", Label: "顧客名", Match: "partial"},
				{Column: "kana", Label: "カナ", Match: "partial"},
				{Column: "tel_no", Label: "電話番号", Match: "partial"},
			},
		},
	}
}
