// Package config loads the application configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment overrides,
// e.g. SERVICOFACIL_SERVER_ADDR, SERVICOFACIL_STORE_DATA_DIR.
const envPrefix = "SERVICOFACIL_"

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Store  StoreConfig  `koanf:"store"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig configures the local HTTP boundary.
type ServerConfig struct {
	// Addr is the listen address for the local API, loopback by default.
	Addr string `koanf:"addr"`
}

// StoreConfig configures the durable key-value store.
type StoreConfig struct {
	// DataDir is the directory holding one file per collection key.
	DataDir string `koanf:"data_dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `koanf:"level"`
}

// Load reads configuration in precedence order: defaults, then the YAML
// file at path (skipped when absent), then SERVICOFACIL_* environment
// variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"server.addr":    "127.0.0.1:8080",
		"store.data_dir": "data",
		"log.level":      "info",
	}
	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// envKey maps SERVICOFACIL_STORE_DATA_DIR to store.data_dir. Only the first
// underscore separates the section from the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}
