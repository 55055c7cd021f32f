package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the balance simulator.
type Simulator struct {
	// Battle rules used by every simulated battle.
	Battle Battle `yaml:"battle"`

	// Runs is the number of battles per matchup.
	Runs int `yaml:"runs"`
	// Parallelism bounds concurrently running battles.
	Parallelism int `yaml:"parallelism"`
	// Seed is the base seed; battle i of a matchup uses Seed+i.
	Seed  uint64 `yaml:"seed"`
	Level int    `yaml:"level"`

	// CatalogPath optionally points at a YAML catalog merged over the built-in one.
	CatalogPath string `yaml:"catalog_path"`

	// Matchups to simulate. Empty means every pair of catalog champions.
	Matchups []Matchup `yaml:"matchups"`

	// Persist stores run results in the database.
	Persist  bool           `yaml:"persist"`
	Database DatabaseConfig `yaml:"database"`
}

// Matchup is one pairing of champions (with optional items).
type Matchup struct {
	A      string   `yaml:"a"`
	B      string   `yaml:"b"`
	ItemsA []string `yaml:"items_a"`
	ItemsB []string `yaml:"items_b"`
	LevelA int      `yaml:"level_a"`
	LevelB int      `yaml:"level_b"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		Battle:      DefaultBattle(),
		Runs:        200,
		Parallelism: 8,
		Seed:        1,
		Level:       10,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "riftduel",
			Password: "riftduel",
			DBName:   "riftduel",
			SSLMode:  "disable",
		},
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Battle.Normalize()
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	if cfg.Level < 1 {
		cfg.Level = 1
	}

	return cfg, nil
}
