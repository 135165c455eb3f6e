// Package config resolves how the console reaches its store.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/example/airops/internal/db"
)

// Environment variables read by ApplyEnv.
const (
	EnvDriver   = "AIROPS_DRIVER"
	EnvHost     = "AIROPS_HOST"
	EnvPassword = "AIROPS_PASSWORD"
	EnvLogFile  = "AIROPS_LOG_FILE"
	EnvLogLevel = "AIROPS_LOG_LEVEL"
)

// Built-in defaults.
const (
	DefaultDriver  = "postgres"
	DefaultHost    = "localhost"
	DefaultLogFile = "airops.log"
)

// Config represents the console configuration
type Config struct {
	Driver    string `json:"driver,omitempty"`
	Host      string `json:"host,omitempty"`
	Port      string `json:"port,omitempty"`
	DBName    string `json:"dbname,omitempty"`
	User      string `json:"user,omitempty"`
	Password  string `json:"-"`
	LogFile   string `json:"log_file,omitempty"`
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Driver:  DefaultDriver,
		Host:    DefaultHost,
		LogFile: DefaultLogFile,
	}
}

// Path returns the config file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, ".airops", "config.json")
}

// LoadConfig reads .airops/config.json from dir over the defaults.
// A missing file yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes config.json to dir. The password is never written.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Join(dir, ".airops"), 0755); err != nil {
		return fmt.Errorf("failed to create .airops dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays AIROPS_* environment variables onto cfg.
func (c *Config) ApplyEnv() {
	overlay := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	overlay(&c.Driver, EnvDriver)
	overlay(&c.Host, EnvHost)
	overlay(&c.Password, EnvPassword)
	overlay(&c.LogFile, EnvLogFile)
	overlay(&c.LogLevel, EnvLogLevel)
}

// Validate checks that cfg describes a reachable store.
func (c *Config) Validate() error {
	if _, err := db.ParseDriver(c.Driver); err != nil {
		return err
	}
	if c.DBName == "" {
		return errors.New("database name is required")
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("port %q is not a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d is out of range [1, 65535]", port)
	}

	return nil
}

// Options converts cfg into store connection options. Call Validate first.
func (c *Config) Options() (db.Options, error) {
	driver, err := db.ParseDriver(c.Driver)
	if err != nil {
		return db.Options{}, err
	}
	return db.Options{
		Driver:   driver,
		Host:     c.Host,
		Port:     c.Port,
		DBName:   c.DBName,
		User:     c.User,
		Password: c.Password,
	}, nil
}
