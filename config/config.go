package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PREDICTION_RESPONSE_RESOURCE = "prediction_response.json"
const NEWS_RESPONSE_RESOURCE = "news_response.json"

// Config holds all application configuration. Service locations are injected
// here instead of living as package constants so deployments can point the
// frontend at any prediction backend.
type Config struct {
	Server struct {
		ListenAddress string `yaml:"listen_address"`
	} `yaml:"server"`
	Backend struct {
		PredictionBaseURL string `yaml:"prediction_base_url"`
		NewsBaseURL       string `yaml:"news_base_url"`
	} `yaml:"backend"`
	Redis struct {
		Address         string `yaml:"address"`
		Password        string `yaml:"password"`
		DB              int    `yaml:"db"`
		CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
	} `yaml:"redis"`
	Env string `yaml:"env"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FINANCE_LISTEN_ADDRESS"); v != "" {
		cfg.Server.ListenAddress = v
	}
	if v := os.Getenv("FINANCE_PREDICTION_BASE_URL"); v != "" {
		cfg.Backend.PredictionBaseURL = v
	}
	if v := os.Getenv("FINANCE_NEWS_BASE_URL"); v != "" {
		cfg.Backend.NewsBaseURL = v
	}
	if v := os.Getenv("FINANCE_REDIS_ADDRESS"); v != "" {
		cfg.Redis.Address = v
	}
	if v := os.Getenv("FINANCE_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("FINANCE_ENV"); v != "" {
		cfg.Env = v
	}

	// Defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = ":8080"
	}
	if cfg.Backend.PredictionBaseURL == "" {
		cfg.Backend.PredictionBaseURL = "http://localhost:8000"
	}
	if cfg.Backend.NewsBaseURL == "" {
		cfg.Backend.NewsBaseURL = cfg.Backend.PredictionBaseURL
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "redis:6379"
	}
	if cfg.Redis.CacheTTLMinutes == 0 {
		cfg.Redis.CacheTTLMinutes = 30
	}
	if cfg.Env == "" {
		cfg.Env = "prod"
	}

	return cfg, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
