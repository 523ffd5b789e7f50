package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the terminal client's settings. A YAML file fills it first, flags override.
type Config struct {
	BaseURL   string        `yaml:"base_url"`
	ProductID string        `yaml:"product_id"`
	StorePath string        `yaml:"store_path"`
	Interval  time.Duration `yaml:"interval"`
	LogLevel  string        `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:8080",
		StorePath: "countdown.db",
		Interval:  time.Second,
		LogLevel:  "warn",
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if c.ProductID == "" {
		return fmt.Errorf("product ID is required")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	return nil
}
