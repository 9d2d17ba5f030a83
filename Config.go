package main

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"strconv"
)

var ConfigError = errors.New("invalid configuration")

type Config struct {
	ListenAddr       string `yaml:"listen_addr"`
	DatabaseFilepath string `yaml:"database_filepath"`
	SheetRows        int    `yaml:"sheet_rows"`
	SheetCols        int    `yaml:"sheet_cols"`
	LogLevel         string `yaml:"log_level"`
	WebhookWorkers   int    `yaml:"webhook_workers"`
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:     ":8080",
		SheetRows:      5,
		SheetCols:      5,
		LogLevel:       "info",
		WebhookWorkers: 5,
	}
}

// LoadConfig applies, in order: defaults, the YAML file named by CONFIG_FILEPATH, environment variables
func LoadConfig(getenv func(string) string) (Config, error) {
	config := DefaultConfig()

	if path := getenv("CONFIG_FILEPATH"); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return config, err
		}

		if err = yaml.Unmarshal(content, &config); err != nil {
			return config, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := config.applyEnv(getenv); err != nil {
		return config, err
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.DatabaseFilepath == "" {
		return fmt.Errorf("%w: database_filepath is required", ConfigError)
	}

	if c.SheetRows < 1 {
		return fmt.Errorf("%w: sheet_rows should be positive", ConfigError)
	}

	if c.SheetCols < 1 || c.SheetCols > MaxColumns {
		return fmt.Errorf("%w: sheet_cols should be between 1 and %d", ConfigError, MaxColumns)
	}

	if c.WebhookWorkers < 1 {
		return fmt.Errorf("%w: webhook_workers should be positive", ConfigError)
	}

	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	stringVars := map[string]*string{
		"LISTEN_ADDR":       &c.ListenAddr,
		"DATABASE_FILEPATH": &c.DatabaseFilepath,
		"LOG_LEVEL":         &c.LogLevel,
	}
	for name, target := range stringVars {
		if value := getenv(name); value != "" {
			*target = value
		}
	}

	intVars := map[string]*int{
		"SHEET_ROWS":      &c.SheetRows,
		"SHEET_COLS":      &c.SheetCols,
		"WEBHOOK_WORKERS": &c.WebhookWorkers,
	}
	for name, target := range intVars {
		value := getenv(name)
		if value == "" {
			continue
		}

		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %s", ConfigError, name, err)
		}
		*target = parsed
	}

	return nil
}
