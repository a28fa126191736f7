package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the club-level settings loaded from config.yaml. Connection
// settings for Postgres come from DB_* environment variables instead (see
// dbconfig).
type Config struct {
	Club struct {
		Name  string `yaml:"name"`
		Theme struct {
			PrimaryColor   string `yaml:"primary_color"`
			SecondaryColor string `yaml:"secondary_color"`
			CrestURL       string `yaml:"crest_url"`
		} `yaml:"theme"`
	} `yaml:"club"`

	NATS struct {
		Enabled       bool   `yaml:"enabled"`
		URL           string `yaml:"url"`
		Stream        string `yaml:"stream"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"nats"`

	Copywriter struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"copywriter"`
}

func defaultConfig() *Config {
	var config Config
	config.Club.Name = "Clubhouse FC"
	config.Club.Theme.PrimaryColor = "#1d4ed8"
	config.Club.Theme.SecondaryColor = "#facc15"
	config.NATS.URL = "nats://localhost:4222"
	config.NATS.Stream = "CLUB_EVENTS"
	config.NATS.SubjectPrefix = "club"
	return &config
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
