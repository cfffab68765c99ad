package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rdjleague/debatesync/clients/league_api_client"
)

// Config holds the watcher's settings. Values come from an optional YAML file
// with environment-variable overrides on top. Intervals are plain seconds in
// the file.
type Config struct {
	BaseURL   string `yaml:"base_url"`
	SessionDB string `yaml:"session_db"`
	Round     struct {
		PollIntervalSec        int `yaml:"poll_interval_sec"`
		MaxBackoffSec          int `yaml:"max_backoff_sec"`
		MaxConsecutiveFailures int `yaml:"max_consecutive_failures"`
	} `yaml:"round"`
	Notifications struct {
		CountIntervalSec   int `yaml:"count_interval_sec"`
		RefreshIntervalSec int `yaml:"refresh_interval_sec"`
	} `yaml:"notifications"`
}

func defaultConfig() *Config {
	cfg := &Config{
		BaseURL:   league_api_client.DefaultBaseURL,
		SessionDB: "debatesync.db",
	}
	cfg.Round.PollIntervalSec = 5
	cfg.Round.MaxBackoffSec = 120
	cfg.Round.MaxConsecutiveFailures = 20
	cfg.Notifications.CountIntervalSec = 30
	cfg.Notifications.RefreshIntervalSec = 300
	return cfg
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.BaseURL = getEnv("LEAGUE_API_URL", cfg.BaseURL)
	cfg.SessionDB = getEnv("LEAGUE_SESSION_DB", cfg.SessionDB)
	cfg.Round.PollIntervalSec = getEnvAsInt("LEAGUE_POLL_INTERVAL_SEC", cfg.Round.PollIntervalSec)
	cfg.Round.MaxConsecutiveFailures = getEnvAsInt("LEAGUE_MAX_POLL_FAILURES", cfg.Round.MaxConsecutiveFailures)

	return cfg, nil
}

func (c *Config) RoundPollInterval() time.Duration {
	return time.Duration(c.Round.PollIntervalSec) * time.Second
}

func (c *Config) RoundMaxBackoff() time.Duration {
	return time.Duration(c.Round.MaxBackoffSec) * time.Second
}

func (c *Config) NotificationCountInterval() time.Duration {
	return time.Duration(c.Notifications.CountIntervalSec) * time.Second
}

func (c *Config) NotificationRefreshInterval() time.Duration {
	return time.Duration(c.Notifications.RefreshIntervalSec) * time.Second
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
