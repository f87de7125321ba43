// Package config loads server configuration from an optional YAML file with
// environment-variable overrides. A .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config carries the runtime settings of the API server and CLI.
type Config struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	CacheTTL       string `yaml:"cache_ttl"`
	LogLevel       string `yaml:"log_level"`
}

const defaultCacheTTL = 30 * time.Minute

func defaults() *Config {
	return &Config{
		Addr:           ":8080",
		MaxUploadBytes: 25 << 20, // 25 MB uploads
		CacheTTL:       defaultCacheTTL.String(),
		LogLevel:       "info",
	}
}

// Load reads configuration in precedence order: defaults, then the YAML file
// at path (skipped when path is "" or the file is absent), then environment
// variables. godotenv picks up a local .env first.
func Load(path string) (*Config, error) {
	godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := os.Getenv("FINSIGHT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FINSIGHT_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("FINSIGHT_MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.MaxUploadBytes = n
	}
	if v := os.Getenv("FINSIGHT_CACHE_TTL"); v != "" {
		cfg.CacheTTL = v
	}
	if v := os.Getenv("FINSIGHT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// CacheTTLDuration parses the configured TTL, falling back to the default on
// a malformed value.
func (c *Config) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d <= 0 {
		return defaultCacheTTL
	}
	return d
}
