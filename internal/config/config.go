// Package config loads the application configuration from a YAML file with
// environment-variable overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`

	Catalog struct {
		File  string `yaml:"file"`
		Sheet string `yaml:"sheet"`
	} `yaml:"catalog"`

	Generator struct {
		// MaxResults caps a single generation run. It needs to stay generous
		// so the pattern aggregation sees enough variations per slot pattern.
		MaxResults int `yaml:"max_results"`
	} `yaml:"generator"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Load reads the configuration file at path, if present, and applies
// environment overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(path); err == nil {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "debug"

	config.Catalog.File = "timetable/FSC TT Spring 2026 v1.3.2.xlsx"
	config.Catalog.Sheet = "CS"

	config.Generator.MaxResults = 1000

	config.Logging.Level = "info"
	config.Logging.Format = "pretty"
}

func loadFromEnv(config *Config) {
	overrideString(&config.Server.Port, "SERVER_PORT")
	overrideString(&config.Server.Mode, "SERVER_MODE")
	overrideString(&config.Catalog.File, "TIMETABLE_FILE")
	overrideString(&config.Catalog.Sheet, "TIMETABLE_SHEET")
	overrideInt(&config.Generator.MaxResults, "GENERATOR_MAX_RESULTS")
	overrideString(&config.Logging.Level, "LOG_LEVEL")
	overrideString(&config.Logging.Format, "LOG_FORMAT")
}

func validate(config *Config) error {
	if config.Catalog.File == "" {
		return fmt.Errorf("catalog file must be set")
	}
	if config.Catalog.Sheet == "" {
		return fmt.Errorf("catalog sheet must be set")
	}
	if config.Generator.MaxResults <= 0 {
		return fmt.Errorf("generator max_results must be positive, got %v", config.Generator.MaxResults)
	}
	return nil
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func overrideInt(target *int, key string) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}
